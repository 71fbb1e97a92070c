package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
// Un índice único parcial (is_default WHERE is_default) garantiza a lo más una
// ubicación por defecto.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, name, address, is_default, created_at, updated_at`

func (r *LocationRepo) Create(l *entity.Location) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO locations (`+locationColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.Name, l.Address, l.IsDefault, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetDefault devuelve la ubicación por defecto; ErrNotFound si no hay ninguna
// configurada (el ledger funciona igualmente, con ubicación vacía).
func (r *LocationRepo) GetDefault() (*entity.Location, error) {
	return r.getBy(`WHERE is_default`)
}

func (r *LocationRepo) getBy(where string, args ...any) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(),
		`SELECT `+locationColumns+` FROM locations `+where, args...,
	).Scan(&l.ID, &l.Name, &l.Address, &l.IsDefault, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

func (r *LocationRepo) Update(l *entity.Location) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE locations SET name = $2, address = $3, is_default = $4, updated_at = $5 WHERE id = $1`,
		l.ID, l.Name, l.Address, l.IsDefault, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+locationColumns+` FROM locations ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.IsDefault, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
