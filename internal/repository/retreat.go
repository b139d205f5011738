package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RetreatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRetreatRepo(db *dbpg.DB) *RetreatRepository {
	return &RetreatRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const retreatColumns = `id, title, slug, category, status, total_seats, male_seats, female_seats,
		price, is_paid, location, starts_on, ends_on, created_at, updated_at`

func (r *RetreatRepository) GetByID(ctx context.Context, id string) (*domain.Retreat, error) {
	query := `SELECT ` + retreatColumns + `
			  FROM retreats
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get retreat: %w", err)
	}

	ret, err := scanRetreat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRetreatNotFound
		}
		return nil, fmt.Errorf("scan retreat: %w", err)
	}

	return ret, nil
}

func (r *RetreatRepository) List(ctx context.Context) ([]*domain.Retreat, error) {
	query := `SELECT ` + retreatColumns + `
			  FROM retreats
			  ORDER BY starts_on ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list retreats: %w", err)
	}
	defer rows.Close()

	var res []*domain.Retreat
	for rows.Next() {
		ret, err := scanRetreat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan retreat: %w", err)
		}
		res = append(res, ret)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRetreat(row scanner) (*domain.Retreat, error) {
	var ret domain.Retreat
	var price sql.NullInt64
	if err := row.Scan(
		&ret.ID, &ret.Title, &ret.Slug, &ret.Category, &ret.Status,
		&ret.Availability.Total, &ret.Availability.Male, &ret.Availability.Female,
		&price, &ret.IsPaid, &ret.Location, &ret.StartsOn, &ret.EndsOn,
		&ret.CreatedAt, &ret.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if price.Valid {
		ret.Price = &price.Int64
	}
	return &ret, nil
}
