package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ridedemo/pkg/logger"
	"ridedemo/pkg/models"
	"ridedemo/storage"
)

type riderRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewRiderRepo(db *pgxpool.Pool, log logger.ILogger) storage.IRiderStorage {
	return &riderRepo{db: db, log: log}
}

func (r *riderRepo) Create(ctx context.Context, rider *models.Rider) error {
	query := `INSERT INTO riders (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`
	_, err := r.db.Exec(ctx, query, rider.ID(), rider.Name())
	if err != nil {
		r.log.Error("failed to create rider", logger.Int64("rider_id", rider.ID()), logger.Error(err))
	}
	return err
}

func (r *riderRepo) AppendHistory(ctx context.Context, riderID int64, entry string) error {
	query := `INSERT INTO rider_history (rider_id, entry) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, riderID, entry)
	if err != nil {
		r.log.Error("failed to append rider history", logger.Int64("rider_id", riderID), logger.Error(err))
	}
	return err
}

func (r *riderRepo) History(ctx context.Context, riderID int64) ([]string, error) {
	var exists bool
	queryCheck := `SELECT EXISTS(SELECT 1 FROM riders WHERE id = $1)`
	if err := r.db.QueryRow(ctx, queryCheck, riderID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrNotFound
	}

	query := `SELECT entry FROM rider_history WHERE rider_id = $1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, riderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []string{}
	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
