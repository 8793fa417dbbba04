// ABOUTME: Development backend serving the REST contract from memory
// ABOUTME: Seeds a demo dataset and signs session tokens with a local secret

package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rodrigoeramirez/vida-console/internal/mockapi"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", defaultEnv("VIDA_MOCKAPI_ADDR", ":8080"), "listen address")
	secret := flag.String("secret", defaultEnv("VIDA_MOCKAPI_SECRET", "dev-secret"), "token signing secret")
	clave := flag.String("clave", defaultEnv("VIDA_MOCKAPI_CLAVE", "secreta123"), "password for every seeded account")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	logger := slog.Default().With("component", "mockapi")

	srv := mockapi.NewServer([]byte(*secret))
	if err := srv.SeedDemo(*clave); err != nil {
		logger.Error("seeding demo data", "error", err)
		os.Exit(1)
	}

	logger.Info("mock backend listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func defaultEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
