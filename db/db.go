package db

import (
	"database/sql"
	"demo-bank-api/logger"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres pool described by databaseURL and verifies it with a ping.
func Connect(databaseURL string) (*sql.DB, error) {
	logger.Log.WithField("connection", redact(databaseURL)).Info("Attempting to connect to the database")

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = db.Ping(); err != nil {
		logger.Log.WithError(err).Error("Failed to ping database")
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return db, nil
}

// redact strips the password from a connection URL so it can be logged.
func redact(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Scheme == "" {
		return "<unparseable>"
	}
	return u.Redacted()
}
