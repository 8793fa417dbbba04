// ABOUTME: User management subcommands, gated on the ADMIN-only policy
// ABOUTME: List falls back to the local snapshot when the backend is down

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/rodrigoeramirez/vida-console/internal/api"
	"github.com/rodrigoeramirez/vida-console/internal/authz"
	"github.com/rodrigoeramirez/vida-console/internal/filter"
	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/render"
)

func (a *app) cmdUsuarios(ctx context.Context, args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list":
		return a.usuariosList(ctx, args)
	case "create":
		return a.usuariosCreate(ctx, args)
	case "update":
		return a.usuariosUpdate(ctx, args)
	case "delete":
		return a.usuariosDelete(ctx, args)
	case "clave":
		return a.usuariosClave(ctx, args)
	case "roles":
		return a.usuariosRoles(ctx)
	case "lideres":
		return a.usuariosLideres(ctx)
	case "timoteos":
		return a.usuariosTimoteos(ctx)
	case "exists":
		return a.usuariosExists(ctx, args)
	default:
		return fmt.Errorf("unknown usuarios subcommand: %s", subcmd)
	}
}

func (a *app) usuariosList(ctx context.Context, args []string) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}

	fs := flag.NewFlagSet("usuarios list", flag.ContinueOnError)
	buscar := fs.String("buscar", "", "accent-insensitive search over name and email")
	todos := fs.Bool("todos", false, "include deactivated accounts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	usuarios, stale, fetchedAt, err := a.cache.Usuarios(ctx, a.client.Usuarios)
	if err != nil {
		return err
	}
	if stale {
		render.StaleNotice(os.Stdout, fetchedAt)
	}

	if !*todos {
		activos := usuarios[:0:0]
		for _, u := range usuarios {
			if u.Activo() {
				activos = append(activos, u)
			}
		}
		usuarios = activos
	}
	usuarios = filter.ApplySearch(usuarios, *buscar)

	render.UsuariosTable(os.Stdout, usuarios)
	return nil
}

// usuarioFlags registers the shared create/update form flags.
func usuarioFlags(fs *flag.FlagSet, in *model.UsuarioInput) {
	fs.StringVar(&in.Nombre, "nombre", "", "first name")
	fs.StringVar(&in.Apellido, "apellido", "", "last name")
	fs.StringVar(&in.Email, "email", "", "email address")
	fs.StringVar(&in.Telefono, "telefono", "", "10-digit phone number")
	fs.Func("rol", "role (ADMIN, LIDER, TIMOTEO, USUARIO)", func(s string) error {
		in.Rol = model.ParseRol(s)
		return nil
	})
}

func (a *app) usuariosCreate(ctx context.Context, args []string) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}

	fs := flag.NewFlagSet("usuarios create", flag.ContinueOnError)
	var in model.UsuarioInput
	usuarioFlags(fs, &in)
	fs.StringVar(&in.Clave, "clave", "", "initial password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if in.Clave == "" {
		return errors.New("La clave es requerida")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	// The registration form checks availability before submitting
	exists, err := a.client.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("el email %s ya se encuentra registrado", in.Email)
	}

	usuario, err := a.client.CreateUsuario(ctx, in)
	if err != nil {
		return err
	}
	color.Green("Usuario creado: %s (id %d)\n", usuario.NombreCompleto(), usuario.ID)
	return nil
}

func (a *app) usuariosUpdate(ctx context.Context, args []string) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}

	id, args, err := takeID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("usuarios update", flag.ContinueOnError)
	var in model.UsuarioInput
	usuarioFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Unset flags keep the current values
	current, err := a.client.Usuario(ctx, id)
	if err != nil {
		return err
	}
	if in.Nombre == "" {
		in.Nombre = current.Nombre
	}
	if in.Apellido == "" {
		in.Apellido = current.Apellido
	}
	if in.Email == "" {
		in.Email = current.Email
	}
	if in.Telefono == "" {
		in.Telefono = current.Telefono
	}
	if in.Rol == "" {
		in.Rol = current.Rol
	}
	if err := in.Validate(); err != nil {
		return err
	}

	usuario, err := a.client.UpdateUsuario(ctx, id, in)
	if err != nil {
		return err
	}
	color.Green("Usuario actualizado: %s\n", usuario.NombreCompleto())
	return nil
}

func (a *app) usuariosDelete(ctx context.Context, args []string) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}

	id, _, err := takeID(args)
	if err != nil {
		return err
	}
	if err := a.client.DeleteUsuario(ctx, id); err != nil {
		return err
	}
	color.Green("Usuario %d dado de baja.\n", id)
	return nil
}

func (a *app) usuariosClave(ctx context.Context, args []string) error {
	sess, err := a.requireRole()
	if err != nil {
		return err
	}

	id, _, err := takeID(args)
	if err != nil {
		return err
	}
	if !authz.CanChangeClave(sess, id) {
		return errors.New("solo podés cambiar tu propia clave")
	}

	clave, err := prompt("Nueva clave: ")
	if err != nil {
		return err
	}
	if len(clave) < 6 {
		return errors.New("La clave debe tener al menos 6 caracteres")
	}

	if err := a.client.UpdateClave(ctx, id, clave); err != nil {
		return err
	}
	color.Green("Clave actualizada.\n")
	return nil
}

func (a *app) usuariosRoles(ctx context.Context) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}
	roles, err := a.client.Roles(ctx)
	if err != nil {
		return err
	}
	for _, rol := range roles {
		fmt.Println(rol)
	}
	return nil
}

func (a *app) usuariosLideres(ctx context.Context) error {
	if _, err := a.requireRole(); err != nil {
		return err
	}
	usuarios, err := a.client.Lideres(ctx)
	if err != nil {
		return err
	}
	render.UsuariosTable(os.Stdout, usuarios)
	return nil
}

func (a *app) usuariosTimoteos(ctx context.Context) error {
	if _, err := a.requireRole(); err != nil {
		return err
	}
	usuarios, err := a.client.Timoteos(ctx)
	if err != nil {
		return err
	}
	render.UsuariosTable(os.Stdout, usuarios)
	return nil
}

func (a *app) usuariosExists(ctx context.Context, args []string) error {
	if _, err := a.requireRole(model.RolAdmin); err != nil {
		return err
	}
	if len(args) < 1 {
		return errors.New("usage: vida-admin usuarios exists <email>")
	}
	exists, err := a.client.ExistsByEmail(ctx, args[0])
	if err != nil {
		return err
	}
	if exists {
		fmt.Printf("%s ya está registrado.\n", args[0])
	} else {
		fmt.Printf("%s está disponible.\n", args[0])
	}
	return nil
}

// takeID pops a numeric id from the front of args.
func takeID(args []string) (int64, []string, error) {
	if len(args) < 1 {
		return 0, nil, errors.New("missing <id> argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("invalid id %q", args[0])
	}
	return id, args[1:], nil
}

// conflictHint decorates 409s from the backend with the célula name
// when the availability check can resolve it.
func conflictHint(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Mensaje != "" {
		return errors.New(apiErr.Mensaje)
	}
	return err
}
