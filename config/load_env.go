package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv layers an env file for the given environment (dev, production)
// over the process environment. Missing files are fine; OS vars win.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("env", env))
	}
}
