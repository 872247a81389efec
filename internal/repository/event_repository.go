package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/crewcal/internal/domain"
)

// EventRepository encapsulates event document persistence. Documents are
// stored whole (JSONB) keyed by (region, department, id); writes are full
// replaces, last write wins.
type EventRepository interface {
	Upsert(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, partition domain.Partition, id string) (bool, error)
	GetByID(ctx context.Context, partition domain.Partition, id string) (*domain.Event, error)
	ListByPartition(ctx context.Context, partition domain.Partition) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Upsert(ctx context.Context, event *domain.Event) error {
	doc, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	const query = `
        INSERT INTO events (region, department, id, doc, updated_at)
        VALUES ($1,$2,$3,$4,NOW())
        ON CONFLICT (region, department, id)
        DO UPDATE SET doc=EXCLUDED.doc, updated_at=NOW()`
	_, err = r.pool.Exec(ctx, query, event.Region, event.Department, event.ID, doc)
	return err
}

func (r *eventRepository) Delete(ctx context.Context, partition domain.Partition, id string) (bool, error) {
	const query = `DELETE FROM events WHERE region=$1 AND department=$2 AND id=$3`
	cmd, err := r.pool.Exec(ctx, query, partition.Region, partition.Department, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *eventRepository) GetByID(ctx context.Context, partition domain.Partition, id string) (*domain.Event, error) {
	const query = `SELECT doc FROM events WHERE region=$1 AND department=$2 AND id=$3`
	var doc []byte
	if err := r.pool.QueryRow(ctx, query, partition.Region, partition.Department, id).Scan(&doc); err != nil {
		return nil, err
	}
	return decodeEvent(doc)
}

func (r *eventRepository) ListByPartition(ctx context.Context, partition domain.Partition) ([]domain.Event, error) {
	const query = `
        SELECT doc FROM events
        WHERE region=$1 AND department=$2
        ORDER BY updated_at, id`
	rows, err := r.pool.Query(ctx, query, partition.Region, partition.Department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var result []domain.Event
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		event, err := decodeEvent(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *event)
	}
	return result, rows.Err()
}

// decodeEvent unmarshals a stored document and folds legacy single-date /
// single-type records into the canonical shape.
func decodeEvent(doc []byte) (*domain.Event, error) {
	var event domain.Event
	if err := json.Unmarshal(doc, &event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	event.Normalize()
	return &event, nil
}
