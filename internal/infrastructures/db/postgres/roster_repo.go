package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

// Repository archives the last good roster per user, one row per duty day.
// The day payload is stored as jsonb since legs are nested and never queried
// individually.
type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) LoadByUser(ctx context.Context, userID string) ([]models.DutyDay, error) {
	const query = `
		SELECT payload
		FROM roster_days
		WHERE user_id = $1
		ORDER BY iso_date ASC, position ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query roster days: %w", err)
	}
	defer rows.Close()

	days := make([]models.DutyDay, 0, 31)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan roster day: %w", err)
		}

		var day models.DutyDay
		if err := json.Unmarshal(payload, &day); err != nil {
			return nil, fmt.Errorf("unmarshal roster day: %w", err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster days: %w", err)
	}

	if len(days) == 0 {
		return nil, derr.ErrRosterNotFound
	}

	return days, nil
}

// Replace swaps the archived roster for a user with the freshly fetched one
// in a single transaction, so readers never observe a half-written roster.
func (r *Repository) Replace(ctx context.Context, userID string, days []models.DutyDay) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin roster replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM roster_days WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear archived roster: %w", err)
	}

	const insert = `
		INSERT INTO roster_days (user_id, iso_date, label, position, payload, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`

	for i, day := range days {
		payload, err := json.Marshal(day)
		if err != nil {
			return fmt.Errorf("marshal roster day: %w", err)
		}
		if _, err := tx.Exec(ctx, insert, userID, day.ISODate, day.Label, i, payload); err != nil {
			return fmt.Errorf("insert roster day: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit roster replace: %w", err)
	}

	return nil
}
