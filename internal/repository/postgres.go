// Package repository persists the search trail: one row per search
// turn, updated in place when the user acts on a result.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"casafinder/internal/model"
)

// PostgresRepository stores search and feedback logs.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository connects to PostgreSQL and verifies the
// connection with a ping.
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogSearch records one completed search turn. The criteria record is
// stored as JSONB so later analysis can query individual fields.
func (r *PostgresRepository) LogSearch(ctx context.Context, searchID, query string, criteria model.SearchCriteria, resultCount int, casaIDs []int64, tookMs int) error {
	criteriaJSON, err := json.Marshal(criteria)
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}

	logQuery := `
		INSERT INTO search_logs (search_id, query, criteria, result_count, returned_casa_ids, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, logQuery, searchID, query, criteriaJSON, resultCount, pq.Array(casaIDs), tookMs)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback attaches a user action to a previously logged search.
func (r *PostgresRepository) LogFeedback(ctx context.Context, searchID string, casaID int64, action string) error {
	query := `
		UPDATE search_logs
		SET clicked_casa_id = $2, action = $3
		WHERE search_id = $1
	`
	_, err := r.db.ExecContext(ctx, query, searchID, casaID, action)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
