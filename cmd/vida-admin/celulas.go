// ABOUTME: Célula subcommands: filtered listing, map summary, CRUD, enumerations
// ABOUTME: Assignment conflicts are checked by célula id before submitting

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rodrigoeramirez/vida-console/internal/authz"
	"github.com/rodrigoeramirez/vida-console/internal/filter"
	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/render"
)

func (a *app) cmdCelulas(ctx context.Context, args []string) error {
	subcmd := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list":
		return a.celulasList(ctx, args, false)
	case "map":
		return a.celulasList(ctx, args, true)
	case "show":
		return a.celulasShow(ctx, args)
	case "create":
		return a.celulasCreate(ctx, args)
	case "update":
		return a.celulasUpdate(ctx, args)
	case "delete":
		return a.celulasDelete(ctx, args)
	case "dias":
		return a.celulasDias(ctx)
	case "generos":
		return a.celulasGeneros(ctx)
	case "libre":
		return a.celulasLibre(ctx, args)
	case "filtros":
		return a.celulasFiltros(args)
	default:
		return fmt.Errorf("unknown celulas subcommand: %s", subcmd)
	}
}

// criteriaFlags registers the shared filter flags, starting from the
// saved preferences unless --sin-filtros is given.
func (a *app) criteriaFlags(fs *flag.FlagSet) *filter.Criteria {
	criteria := a.prefs.Criteria()
	c := &criteria

	var explicitDias []string
	fs.Func("dia", "day filter, repeatable (LUNES..DOMINGO)", func(s string) error {
		explicitDias = append(explicitDias, strings.ToUpper(s))
		c.Dias = explicitDias
		return nil
	})
	fs.Func("genero", "audience gender (HOMBRE or MUJER)", func(s string) error {
		c.Genero = strings.ToUpper(s)
		return nil
	})
	fs.StringVar(&c.HoraDesde, "desde", c.HoraDesde, "inclusive HH:MM lower bound")
	fs.StringVar(&c.HoraHasta, "hasta", c.HoraHasta, "inclusive HH:MM upper bound")
	fs.Int64Var(&c.LiderID, "lider", c.LiderID, "only células led by this user id")
	fs.StringVar(&c.SearchText, "buscar", "", "accent-insensitive name/address search")
	fs.BoolFunc("sin-filtros", "ignore saved default filters", func(string) error {
		c.Reset()
		return nil
	})
	return c
}

func (a *app) celulasList(ctx context.Context, args []string, asMap bool) error {
	if _, err := a.requireRole(); err != nil {
		return err
	}

	name := "celulas list"
	if asMap {
		name = "celulas map"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	criteria := a.criteriaFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	celulas, stale, fetchedAt, err := a.cache.Celulas(ctx, a.client.Celulas)
	if err != nil {
		return err
	}
	if stale {
		render.StaleNotice(os.Stdout, fetchedAt)
	}

	filtered := a.memo.Apply(celulas, *criteria)
	if asMap {
		render.MapSummary(os.Stdout, filtered)
	} else {
		render.CelulasTable(os.Stdout, filtered)
	}
	return nil
}

func (a *app) celulasShow(ctx context.Context, args []string) error {
	sess, err := a.requireRole()
	if err != nil {
		return err
	}

	id, _, err := takeID(args)
	if err != nil {
		return err
	}
	celula, err := a.client.Celula(ctx, id)
	if err != nil {
		return err
	}

	render.CelulaPanel(os.Stdout, celula,
		authz.CanEditCelula(sess, *celula),
		authz.CanDeleteCelula(sess))
	return nil
}

// celulaFlags registers the shared create/update form flags.
func celulaFlags(fs *flag.FlagSet, in *model.CelulaInput) {
	fs.StringVar(&in.Nombre, "nombre", "", "célula name")
	fs.Func("dia", "weekday (LUNES..DOMINGO)", func(s string) error {
		in.Dia = strings.ToUpper(s)
		return nil
	})
	fs.Func("genero", "audience gender (HOMBRE or MUJER)", func(s string) error {
		in.Genero = strings.ToUpper(s)
		return nil
	})
	fs.StringVar(&in.HoraInicio, "hora", "", "start time (HH:MM)")
	fs.StringVar(&in.Direccion, "direccion", "", "street address")
	fs.Float64Var(&in.Latitud, "lat", 0, "latitude")
	fs.Float64Var(&in.Longitud, "lng", 0, "longitude")
	fs.StringVar(&in.Descripcion, "descripcion", "", "free-text description")
	fs.StringVar(&in.Telefono, "telefono", "", "contact phone")
	fs.StringVar(&in.EnlaceWhatsapp, "whatsapp", "", "WhatsApp group link")
	fs.Int64Var(&in.LiderID, "lider", 0, "líder user id")
	fs.Int64Var(&in.TimoteoID, "timoteo", 0, "timoteo user id (optional)")
}

func (a *app) celulasCreate(ctx context.Context, args []string) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}

	fs := flag.NewFlagSet("celulas create", flag.ContinueOnError)
	var in model.CelulaInput
	celulaFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	// The form asks the backend for availability before submitting
	if nombre, err := a.client.UsuarioLibre(ctx, in.LiderID); err != nil {
		return err
	} else if nombre != "" {
		return fmt.Errorf("el líder ya se encuentra asignado a la célula: %s", nombre)
	}
	if in.TimoteoID != 0 {
		if nombre, err := a.client.UsuarioLibre(ctx, in.TimoteoID); err != nil {
			return err
		} else if nombre != "" {
			return fmt.Errorf("el timoteo ya se encuentra asignado a la célula: %s", nombre)
		}
	}

	celula, err := a.client.CreateCelula(ctx, in)
	if err != nil {
		return conflictHint(err)
	}
	a.memo.Invalidate()
	color.Green("Célula creada: %s (id %d)\n", celula.Nombre, celula.ID)
	return nil
}

func (a *app) celulasUpdate(ctx context.Context, args []string) error {
	sess, err := a.requireRole()
	if err != nil {
		return err
	}

	id, args, err := takeID(args)
	if err != nil {
		return err
	}

	current, err := a.client.Celula(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanEditCelula(sess, *current) {
		return errors.New("no tenés permiso para editar esta célula")
	}

	fs := flag.NewFlagSet("celulas update", flag.ContinueOnError)
	var in model.CelulaInput
	celulaFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Reassignments are validated by id against the full collection, so
	// editing a célula keeps its own líder without tripping the check
	// and two células sharing a name cannot be confused.
	if in.LiderID != 0 || in.TimoteoID != 0 {
		celulas, err := a.client.Celulas(ctx)
		if err != nil {
			return err
		}
		if in.LiderID != 0 {
			if blocked := filter.AssignmentConflict(celulas, in.LiderID, id); blocked != nil {
				return fmt.Errorf("el líder ya se encuentra asignado a la célula: %s", blocked.Nombre)
			}
		}
		if in.TimoteoID != 0 {
			if blocked := filter.AssignmentConflict(celulas, in.TimoteoID, id); blocked != nil {
				return fmt.Errorf("el timoteo ya se encuentra asignado a la célula: %s", blocked.Nombre)
			}
		}
	}

	celula, err := a.client.UpdateCelula(ctx, id, in)
	if err != nil {
		return conflictHint(err)
	}
	a.memo.Invalidate()
	color.Green("Célula actualizada: %s\n", celula.Nombre)
	return nil
}

func (a *app) celulasDelete(ctx context.Context, args []string) error {
	sess, err := a.requireRole()
	if err != nil {
		return err
	}
	if !authz.CanDeleteCelula(sess) {
		return errors.New("solo un ADMIN puede eliminar células")
	}

	id, _, err := takeID(args)
	if err != nil {
		return err
	}
	if err := a.client.DeleteCelula(ctx, id); err != nil {
		return err
	}
	a.memo.Invalidate()
	color.Green("Célula %d eliminada; su líder y timoteo quedaron libres.\n", id)
	return nil
}

func (a *app) celulasDias(ctx context.Context) error {
	if _, err := a.requireRole(); err != nil {
		return err
	}
	dias, err := a.client.Dias(ctx)
	if err != nil {
		return err
	}
	for _, dia := range dias {
		fmt.Println(dia)
	}
	return nil
}

func (a *app) celulasGeneros(ctx context.Context) error {
	if _, err := a.requireRole(); err != nil {
		return err
	}
	generos, err := a.client.Generos(ctx)
	if err != nil {
		return err
	}
	for _, genero := range generos {
		fmt.Println(genero)
	}
	return nil
}

func (a *app) celulasLibre(ctx context.Context, args []string) error {
	if _, err := a.requireRole(); err != nil {
		return err
	}
	id, _, err := takeID(args)
	if err != nil {
		return err
	}
	nombre, err := a.client.UsuarioLibre(ctx, id)
	if err != nil {
		return err
	}
	if nombre == "" {
		color.Green("El usuario %d está libre.\n", id)
	} else {
		color.Yellow("El usuario %d ya está asignado a la célula: %s\n", id, nombre)
	}
	return nil
}

// celulasFiltros saves the given filter flags as the default criteria,
// or clears them with --limpiar.
func (a *app) celulasFiltros(args []string) error {
	fs := flag.NewFlagSet("celulas filtros", flag.ContinueOnError)
	criteria := a.criteriaFlags(fs)
	limpiar := fs.Bool("limpiar", false, "clear the saved default filters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *limpiar {
		criteria.Reset()
	}
	a.prefs.SetCriteria(*criteria)
	if err := a.prefs.Save(prefsPath()); err != nil {
		return err
	}

	if *limpiar {
		color.Green("Filtros guardados eliminados.\n")
	} else {
		color.Green("Filtros guardados como predeterminados.\n")
	}
	return nil
}
