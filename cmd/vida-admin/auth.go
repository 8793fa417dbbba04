// ABOUTME: Sign-in, sign-out, and identity commands
// ABOUTME: Login errors keep the backend's 401/403 distinction in the message

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		if email, err = prompt("Email: "); err != nil {
			return err
		}
	}
	clave, err := prompt("Clave: ")
	if err != nil {
		return err
	}

	sess, err := a.sessions.SignIn(ctx, email, clave)
	if err != nil {
		// ErrInvalidCredentials and ErrCuentaBaja already carry the
		// user-facing message
		return err
	}

	color.Green("Sesión iniciada: %s (%s)\n", sess.NombreCompleto(), sess.Rol)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if a.sessions.Current() == nil {
		fmt.Println("No hay sesión activa.")
		return nil
	}
	if err := a.sessions.SignOut(ctx); err != nil {
		return err
	}
	color.Green("Sesión cerrada.\n")
	return nil
}

func (a *app) cmdMe() error {
	sess := a.sessions.Current()
	if sess == nil {
		fmt.Println("No hay sesión activa. Ejecutá 'vida-admin login'.")
		return nil
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Identidad")
	cyan.Println("  ---------")
	fmt.Printf("  Nombre:   %s\n", sess.NombreCompleto())
	fmt.Printf("  Email:    %s\n", sess.Email)
	fmt.Printf("  Rol:      %s\n", sess.Rol)
	if a.sessions.IsExpired() {
		color.Yellow("  Token:    expirado (volvé a iniciar sesión)\n")
	} else if !sess.TokenExpiry.IsZero() {
		fmt.Printf("  Token:    válido hasta %s\n", sess.TokenExpiry.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}

// prompt reads one line from stdin after printing the label.
func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
