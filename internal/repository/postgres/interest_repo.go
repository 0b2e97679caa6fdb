package postgres

import (
	"context"
	"database/sql"
	"errors"

	"twototango/internal/domain"

	"github.com/lib/pq"
)

type interestRepository struct {
	DB *sql.DB
}

// NewInterestRepository returns a domain.InterestRepository implemented with Postgres.
func NewInterestRepository(db *sql.DB) domain.InterestRepository {
	return &interestRepository{DB: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *domain.Interest) error {
	err := r.DB.QueryRowContext(ctx, `INSERT INTO interests (name) VALUES ($1) RETURNING id`, interest.Name).Scan(&interest.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *interestRepository) GetByID(ctx context.Context, id string) (*domain.Interest, error) {
	var interest domain.Interest
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM interests WHERE id = $1`, id).Scan(&interest.ID, &interest.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) List(ctx context.Context) ([]*domain.Interest, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM interests ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := make([]*domain.Interest, 0)
	for rows.Next() {
		var interest domain.Interest
		if err := rows.Scan(&interest.ID, &interest.Name); err != nil {
			return nil, err
		}
		interests = append(interests, &interest)
	}
	return interests, rows.Err()
}

func (r *interestRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Interest, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT i.id, i.name FROM interests i
		 JOIN user_interests ui ON ui.interest_id = i.id
		 WHERE ui.user_id = $1
		 ORDER BY i.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := make([]*domain.Interest, 0)
	for rows.Next() {
		var interest domain.Interest
		if err := rows.Scan(&interest.ID, &interest.Name); err != nil {
			return nil, err
		}
		interests = append(interests, &interest)
	}
	return interests, rows.Err()
}
