package main

import (
	"database/sql"
	"fmt"

	"github.com/soilfarming/soil-agent/internal/bootstrap"
)

// connectDB opens the database the same way the API server does. The admin
// commands only need Postgres; none of them touch Redis.
func connectDB(ctx *commandContext) (*sql.DB, error) {
	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: ctx.Config.Postgres,
		Logger:   ctx.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func closeQuietly(ctx *commandContext, closeFn func() error, what string) {
	if err := closeFn(); err != nil {
		ctx.Logger.Warn("cleanup failed", "step", what, "error", err)
	}
}
