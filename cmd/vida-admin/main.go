// ABOUTME: Admin console CLI for Un Estilo de Vida usuarios and células
// ABOUTME: Wires config, local state, session store, and the backend client

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/rodrigoeramirez/vida-console/internal/api"
	"github.com/rodrigoeramirez/vida-console/internal/authz"
	"github.com/rodrigoeramirez/vida-console/internal/config"
	"github.com/rodrigoeramirez/vida-console/internal/filter"
	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/session"
	"github.com/rodrigoeramirez/vida-console/internal/store"
)

const banner = `
       _     _
__   _(_) __| | __ _        ___ ___  _ __  ___  ___ | | ___
\ \ / / |/ _' |/ _' |_____ / __/ _ \| '_ \/ __|/ _ \| |/ _ \
 \ V /| | (_| | (_| |_____| (_| (_) | | | \__ \ (_) | |  __/
  \_/ |_|\__,_|\__,_|      \___\___/|_| |_|___/\___/|_|\___|
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	switch cmd {
	case "login":
		err = a.cmdLogin(ctx, args)
	case "logout":
		err = a.cmdLogout(ctx)
	case "me":
		err = a.cmdMe()
	case "usuarios":
		err = a.cmdUsuarios(ctx, args)
	case "celulas":
		err = a.cmdCelulas(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired collaborators every command needs.
type app struct {
	cfg      *config.Config
	state    store.Store
	client   *api.Client
	sessions *session.Store
	cache    *api.SnapshotCache
	prefs    *Prefs

	// memo backs the células derivation; invalidated after mutations
	memo filter.Memo
}

// newApp loads config, opens the local state store, and wires the
// client and session store together.
func newApp(ctx context.Context) (*app, error) {
	// A .env next to the binary is a development convenience
	_ = godotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.State.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	state, err := store.NewSQLiteStore(cfg.State.Path)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}

	client := api.NewClient(cfg.Backend.URL)
	client.SetHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout})

	sessions := session.NewStore(ctx, client, state)
	client.SetTokenSource(sessions)

	prefs, err := LoadPrefs(prefsPath())
	if err != nil {
		slog.Warn("ignoring unreadable preferences", "error", err)
		prefs = &Prefs{}
	}

	return &app{
		cfg:      cfg,
		state:    state,
		client:   client,
		sessions: sessions,
		cache:    api.NewSnapshotCache(state),
		prefs:    prefs,
	}, nil
}

func (a *app) close() {
	if err := a.state.Close(); err != nil {
		slog.Error("closing state store", "error", err)
	}
}

// configPath resolves the YAML config location: VIDA_CONSOLE_CONFIG
// wins, otherwise the XDG config directory.
func configPath() string {
	if p := os.Getenv("VIDA_CONSOLE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "vida-console", "config.yaml")
}

// prefsPath resolves the TOML preferences location next to the config.
func prefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "prefs.toml"
	}
	return filepath.Join(dir, "vida-console", "prefs.toml")
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Logging.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// requireRole resolves the route-level guard to a session or an error
// the command loop prints.
func (a *app) requireRole(roles ...model.Rol) (*session.Session, error) {
	sess := a.sessions.Current()
	switch authz.Authorize(sess, roles) {
	case authz.DecisionAllow:
		return sess, nil
	case authz.DecisionRedirectLogin:
		return nil, errors.New("no hay sesión activa: ejecutá 'vida-admin login'")
	default:
		return nil, errors.New("tu rol no tiene acceso a esta sección")
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: vida-admin <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login [email]             Sign in against the backend")
	fmt.Println("  logout                    Clear the stored session")
	fmt.Println("  me                        Show the signed-in identity")
	fmt.Println("  usuarios                  List users (ADMIN)")
	fmt.Println("  usuarios create           Create a user (ADMIN)")
	fmt.Println("  usuarios update <id>      Update a user (ADMIN)")
	fmt.Println("  usuarios delete <id>      Deactivate a user (ADMIN)")
	fmt.Println("  usuarios clave <id>       Change a user's password")
	fmt.Println("  usuarios roles            List the role enumeration")
	fmt.Println("  usuarios lideres          List users eligible as líder")
	fmt.Println("  usuarios timoteos         List users eligible as timoteo")
	fmt.Println("  usuarios exists <email>   Check if an email is registered")
	fmt.Println("  celulas                   List células (filters below)")
	fmt.Println("  celulas map               Grouped map summary of the filtered set")
	fmt.Println("  celulas show <id>         Detail panel for one célula")
	fmt.Println("  celulas create            Create a célula")
	fmt.Println("  celulas update <id>       Update a célula")
	fmt.Println("  celulas delete <id>       Delete a célula (ADMIN)")
	fmt.Println("  celulas dias              List the weekday enumeration")
	fmt.Println("  celulas generos           List the gender enumeration")
	fmt.Println("  celulas libre <id>        Check a user's availability")
	fmt.Println("  celulas filtros           Save or clear default filters")
	fmt.Println()
	yellow.Println("Filters (celulas, celulas map):")
	fmt.Println("  --dia <DIA>               Repeatable day filter (LUNES..DOMINGO)")
	fmt.Println("  --genero <HOMBRE|MUJER>   Audience gender")
	fmt.Println("  --desde / --hasta <HH:MM> Start-time window, inclusive")
	fmt.Println("  --lider <id>              Only células led by this user")
	fmt.Println("  --buscar <texto>          Accent-insensitive name/address search")
	fmt.Println("  --sin-filtros             Ignore saved default filters")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  VIDA_CONSOLE_CONFIG       Config file path (default: XDG config dir)")
	fmt.Println()
}
