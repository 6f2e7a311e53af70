// migrate aplica en orden los scripts SQL de un directorio y registra los ya aplicados
// en schema_migrations.
//
// Uso: go run ./cmd/migrate [directorio]
// Por defecto usa ./migrations.
package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/Jinzyy/project-eza-sub000/internal/infrastructure/postgres"
	"github.com/Jinzyy/project-eza-sub000/pkg/config"
	"github.com/Jinzyy/project-eza-sub000/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		log.Fatal().Err(err).Msg("crear schema_migrations")
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		log.Fatal().Err(err).Msg("listar migraciones")
	}
	sort.Strings(files)

	applied := 0
	for _, path := range files {
		name := filepath.Base(path)
		var exists bool
		if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists); err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("consultar schema_migrations")
		}
		if exists {
			continue
		}
		sqlBytes, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("leer migración")
		}
		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("migración fallida")
		}
		log.Info().Str("file", name).Msg("migración aplicada")
		applied++
	}
	log.Info().Int("applied", applied).Int("total", len(files)).Msg("migraciones al día")
}
