// vetctl consulta la API de VetCalc desde la terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"vetcalc/internal/platform/httpclient"
)

const defaultURL = "http://localhost:8080"

const usage = `uso: vetctl [-url URL] <comando> [flags]

comandos:
  drugs     [-species S]                     lista medicamentos
  dose      -drug ID -species S -weight KG   calcula una dosis (-save la guarda)
  vaccines                                   lista vacunas aplicadas con su estado
  due       [-within DIAS]                   vacunas a renovar
  summary                                    contadores del panel
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "vetctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vetctl", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }

	baseURL := fs.String("url", envOr("VETCALC_URL", defaultURL), "URL base de la API")
	timeout := fs.Duration("timeout", httpclient.DefaultTimeout, "timeout por request")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	c, err := httpclient.New(*baseURL, *timeout)
	if err != nil {
		return err
	}
	cli := &cli{api: c, out: out}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "drugs":
		return cli.drugs(ctx, cmdArgs)
	case "dose":
		return cli.dose(ctx, cmdArgs)
	case "vaccines":
		return cli.vaccines(ctx, cmdArgs)
	case "due":
		return cli.due(ctx, cmdArgs)
	case "summary":
		return cli.summary(ctx, cmdArgs)
	default:
		fs.Usage()
		return fmt.Errorf("comando desconocido %q", cmd)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 30*time.Second)
}
