package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"vetcalc/internal/domain/dashboard"
	"vetcalc/internal/domain/drugs"
	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/vaccines"
	"vetcalc/internal/platform/httpclient"
)

type cli struct {
	api *httpclient.Client
	out io.Writer
}

// drugSummary es lo que vetctl lee de GET /drugs.
type drugSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Route     string `json:"route"`
	Frequency string `json:"frequency"`
	Unit      string `json:"unit"`
}

type doseResponse struct {
	drugs.DoseResult
	TotalDoseText string `json:"total_dose_text"`
}

func (c *cli) drugs(ctx context.Context, args []string) error {
	fs := c.flags("drugs")
	sp := fs.String("species", "", "filtrar por especie")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := url.Values{}
	if s := strings.TrimSpace(*sp); s != "" {
		q.Set("species", s)
	}

	ctx, cancel := requestContext(ctx)
	defer cancel()

	var list []drugSummary
	if err := c.api.Get(ctx, "/drugs", q, &list); err != nil {
		return err
	}

	tw := c.table()
	fmt.Fprintln(tw, "ID\tNOMBRE\tVÍA\tFRECUENCIA\tUNIDAD")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Route, d.Frequency, d.Unit)
	}
	return tw.Flush()
}

func (c *cli) dose(ctx context.Context, args []string) error {
	fs := c.flags("dose")
	drugID := fs.String("drug", "", "id del medicamento")
	sp := fs.String("species", "", "especie")
	weight := fs.Float64("weight", 0, "peso en kg")
	save := fs.Bool("save", false, "guardar en el historial")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *drugID == "" || *sp == "" {
		return fmt.Errorf("dose: -drug y -species son obligatorios")
	}

	ctx, cancel := requestContext(ctx)
	defer cancel()

	req := drugs.DoseRequest{DrugID: *drugID, Species: *sp, Weight: *weight}

	var res drugs.DoseResult
	if *save {
		var rec history.Record
		if err := c.api.Post(ctx, "/calculations", req, &rec); err != nil {
			return err
		}
		res = rec.DoseResult
	} else {
		var dr doseResponse
		if err := c.api.Post(ctx, "/doses", req, &dr); err != nil {
			return err
		}
		res = dr.DoseResult
	}

	tw := c.table()
	fmt.Fprintf(tw, "Medicamento:\t%s\n", res.Drug)
	fmt.Fprintf(tw, "Especie:\t%s\n", res.Species.Label())
	fmt.Fprintf(tw, "Peso:\t%s kg\n", strconv.FormatFloat(res.Weight, 'f', -1, 64))
	fmt.Fprintf(tw, "Dosis total:\t%s %s\n", res.TotalDoseText(), res.Unit)
	fmt.Fprintf(tw, "Vía:\t%s\n", res.Route)
	fmt.Fprintf(tw, "Frecuencia:\t%s\n", res.Frequency)
	fmt.Fprintf(tw, "Rango:\t%s\n", res.Range)
	if res.Warnings != "" {
		fmt.Fprintf(tw, "Advertencias:\t%s\n", res.Warnings)
	}
	return tw.Flush()
}

func (c *cli) vaccines(ctx context.Context, args []string) error {
	fs := c.flags("vaccines")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := requestContext(ctx)
	defer cancel()

	var list []vaccines.RecordView
	if err := c.api.Get(ctx, "/vaccines", nil, &list); err != nil {
		return err
	}
	return c.printVaccines(list)
}

func (c *cli) due(ctx context.Context, args []string) error {
	fs := c.flags("due")
	within := fs.Int("within", vaccines.UpcomingWindowDays, "días hacia adelante")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := requestContext(ctx)
	defer cancel()

	var list []vaccines.RecordView
	q := url.Values{"within": {strconv.Itoa(*within)}}
	if err := c.api.Get(ctx, "/vaccines/due", q, &list); err != nil {
		return err
	}
	return c.printVaccines(list)
}

func (c *cli) summary(ctx context.Context, args []string) error {
	fs := c.flags("summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := requestContext(ctx)
	defer cancel()

	var s dashboard.Summary
	if err := c.api.Get(ctx, "/stats/summary", nil, &s); err != nil {
		return err
	}

	tw := c.table()
	fmt.Fprintf(tw, "Tratamientos:\t%d\n", s.TotalTreatments)
	fmt.Fprintf(tw, "Vacunas:\t%d\n", s.TotalVaccines)
	fmt.Fprintf(tw, "Próximas:\t%d\n", s.UpcomingVaccines)
	return tw.Flush()
}

func (c *cli) printVaccines(list []vaccines.RecordView) error {
	tw := c.table()
	fmt.Fprintln(tw, "ESPECIE\tVACUNA\tAPLICADA\tPRÓXIMA\tDÍAS\tESTADO")
	for _, v := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			v.Species.Label(), v.VaccineName, v.AdministrationDate, v.NextDueDate, v.DaysUntil, v.StatusLabel)
	}
	return tw.Flush()
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}
