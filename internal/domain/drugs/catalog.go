package drugs

import "vetcalc/internal/domain/species"

// DefaultCatalog devuelve el vademécum de fábrica, en orden de presentación.
// Cada llamada arma valores nuevos; nadie comparte estado mutable.
func DefaultCatalog() []Entry {
	return []Entry{
		{ID: "pen-duo-strep", Spec: DrugSpec{
			Name:          "Pen Duo Strep 250/200",
			Description:   "Penicilina + Dihidroestreptomicina inyectable",
			Presentation:  "250/200 mg",
			Route:         "IM/IV",
			Frequency:     "C/12h",
			Unit:          "mL",
			Concentration: 50,
			Warnings:      "No usar en alérgicos a penicilina. Conservar en lugar fresco.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.04, MinWeight: 1, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.03, MinWeight: 1, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.05, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.02, MinWeight: 0.5, MaxWeight: 10},
				// aves sin regla: "especie no configurada"
			},
		}},
		{ID: "dexalan", Spec: DrugSpec{
			Name:          "Dexalan 500 mL",
			Description:   "Dexametasona de acción prolongada",
			Presentation:  "500 mL",
			Route:         "IM",
			Frequency:     "C/48-72h",
			Unit:          "mL",
			Concentration: 2,
			Warnings:      "Usado en inflamación severa. No prolongar el tratamiento. Contraindicado en infecciones bacterianas sin cobertura antibiótica.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.02, MinWeight: 5, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.015, MinWeight: 2, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.03, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.01, MinWeight: 1, MaxWeight: 10},
				species.Aves:   Disallowed{Reason: "Dosis difícil de controlar en aves"},
			},
		}},
		{ID: "catosal", Spec: DrugSpec{
			Name:          "Catosal 100 mL",
			Description:   "Energizante y reconstituyente (Butafosfano + Cianocobalamina)",
			Presentation:  "100 mL",
			Route:         "IM/IV",
			Frequency:     "C/48h",
			Unit:          "mL",
			Concentration: 100,
			Warnings:      "Indicado en convalecencia y debilidad. Mejorar respuesta inmunitaria.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.01, MinWeight: 5, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.005, MinWeight: 2, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.02, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.005, MinWeight: 1, MaxWeight: 10},
				species.Aves:   Allowed{DosePerKg: 0.001, MinWeight: 0.1, MaxWeight: 5},
			},
		}},
		{ID: "meloxisan", Spec: DrugSpec{
			Name:          "Meloxisan Pets 50mL",
			Description:   "AINE - Antiinflamatorio no esteroide (Meloxicam)",
			Presentation:  "50 mL",
			Route:         "IM/IV",
			Frequency:     "C/24h",
			Unit:          "mL",
			Concentration: 20,
			Warnings:      "Usar con cuidado en pacientes con problemas renales o gástricos. Máximo 10 días de tratamiento.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.1, MinWeight: 5, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.08, MinWeight: 2, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.1, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.06, MinWeight: 1, MaxWeight: 10},
				species.Aves:   Disallowed{Reason: "Requiere consulta veterinaria especializada"},
			},
		}},
		{ID: "entomic", Spec: DrugSpec{
			Name:          "Entomic 10% 100 mL",
			Description:   "Antiparasitario de amplio espectro (Ivermectina)",
			Presentation:  "100 mL",
			Route:         "SC/IM",
			Frequency:     "C/7-14 días",
			Unit:          "mL",
			Concentration: 10,
			Warnings:      "Efectivo contra helmintos y ectoparásitos. No sobredosar. Tóxico en dosis altas.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.004, MinWeight: 3, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.003, MinWeight: 2, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.01, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.002, MinWeight: 1, MaxWeight: 10},
				species.Aves:   Allowed{DosePerKg: 0.002, MinWeight: 0.1, MaxWeight: 5},
			},
		}},
		{ID: "biomizona", Spec: DrugSpec{
			Name:          "Biomizona 100 mL",
			Description:   "Complejo vitaminizado con oligoelementos",
			Presentation:  "100 mL",
			Route:         "IM/IV",
			Frequency:     "C/48-72h",
			Unit:          "mL",
			Concentration: 50,
			Warnings:      "Para mejorar estado general. Seguro en todas las especies.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.02, MinWeight: 2, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.015, MinWeight: 1, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.03, MinWeight: 10, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.01, MinWeight: 0.5, MaxWeight: 10},
				species.Aves:   Allowed{DosePerKg: 0.005, MinWeight: 0.1, MaxWeight: 5},
			},
		}},
		{ID: "hepatin", Spec: DrugSpec{
			Name:          "Hepatin",
			Description:   "Protector y regenerador hepático",
			Presentation:  "Ampolla inyectable",
			Route:         "IM/IV",
			Frequency:     "C/24-48h",
			Unit:          "Ampolla",
			Concentration: 1,
			Warnings:      "Usar en hepatopatías. Coadyuvante en intoxicaciones.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 1, MinWeight: 5, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.5, MinWeight: 2, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 1, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.25, MinWeight: 1, MaxWeight: 10},
				species.Aves:   Disallowed{Reason: "Requiere consulta específica"},
			},
		}},
		{ID: "bio-c", Spec: DrugSpec{
			Name:          "Bio-C",
			Description:   "Complejo de Vitamina C y oligoelementos",
			Presentation:  "Inyectable",
			Route:         "IM/IV",
			Frequency:     "C/48-72h",
			Unit:          "mL",
			Concentration: 250,
			Warnings:      "Seguro en todas las especies. Indicado en estrés y post-operatorio.",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.01, MinWeight: 2, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.01, MinWeight: 1, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.02, MinWeight: 10, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.01, MinWeight: 0.5, MaxWeight: 10},
				species.Aves:   Allowed{DosePerKg: 0.005, MinWeight: 0.1, MaxWeight: 5},
			},
		}},
		{ID: "vigantol", Spec: DrugSpec{
			Name:          "Vigantol Biovalgina 250 mL",
			Description:   "Vitamina D3 - Regulador del calcio y fósforo",
			Presentation:  "250 mL",
			Route:         "IM",
			Frequency:     "C/7-10 días",
			Unit:          "mL",
			Concentration: 500000, // UI/mL
			Warnings:      "Contra raquitismo y trastornos de mineralización. No sobredosar (toxicidad).",
			Rules: map[species.Species]Rule{
				species.Perro:  Allowed{DosePerKg: 0.001, MinWeight: 5, MaxWeight: 100},
				species.Gato:   Allowed{DosePerKg: 0.0005, MinWeight: 2, MaxWeight: 20},
				species.Oveja:  Allowed{DosePerKg: 0.002, MinWeight: 20, MaxWeight: 150},
				species.Conejo: Allowed{DosePerKg: 0.0005, MinWeight: 1, MaxWeight: 10},
				species.Aves:   Allowed{DosePerKg: 0.0002, MinWeight: 0.1, MaxWeight: 5},
			},
		}},
	}
}
