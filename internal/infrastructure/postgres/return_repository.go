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

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación del puerto ReturnRepository sobre PostgreSQL.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnColumns = `id, return_type, partner_id, status, notes, version, created_by, created_at, updated_at`

// Create persiste una devolución con sus líneas.
func (r *ReturnRepo) Create(ret *entity.ReturnEntry) error {
	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.Type, ret.PartnerID, ret.Status, ret.Notes,
		ret.Version, ret.CreatedBy, ret.CreatedAt, ret.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert return: %w", err)
	}
	return insertLines(r.q, ret.ID, ret.Lines)
}

// GetByID obtiene una devolución con sus líneas.
func (r *ReturnRepo) GetByID(id string) (*entity.ReturnEntry, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`
	var ret entity.ReturnEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ret.ID, &ret.Type, &ret.PartnerID, &ret.Status, &ret.Notes,
		&ret.Version, &ret.CreatedBy, &ret.CreatedAt, &ret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	if ret.Lines, err = loadLines(r.q, ret.ID); err != nil {
		return nil, err
	}
	return &ret, nil
}

// Update persiste la devolución solo si la versión en BD sigue siendo
// expectedVersion.
func (r *ReturnRepo) Update(ret *entity.ReturnEntry, expectedVersion int64) error {
	query := `
		UPDATE returns SET status = $3, notes = $4, version = $5, updated_at = $6
		WHERE id = $1 AND version = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		ret.ID, expectedVersion, ret.Status, ret.Notes, ret.Version, ret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update return: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrStaleTransition
	}
	return replaceLines(r.q, ret.ID, ret.Lines)
}

// List lista devoluciones con filtros opcionales por tipo y estado.
func (r *ReturnRepo) List(returnType, status string, limit, offset int) ([]*entity.ReturnEntry, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE 1=1`
	args := []any{}
	if returnType != "" {
		args = append(args, returnType)
		query += fmt.Sprintf(` AND return_type = $%d`, len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()

	var list []*entity.ReturnEntry
	var ids []string
	for rows.Next() {
		var ret entity.ReturnEntry
		if err := rows.Scan(&ret.ID, &ret.Type, &ret.PartnerID, &ret.Status, &ret.Notes,
			&ret.Version, &ret.CreatedBy, &ret.CreatedAt, &ret.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, &ret)
		ids = append(ids, ret.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	byOrder, err := loadLinesFor(r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, ret := range list {
		ret.Lines = byOrder[ret.ID]
	}
	return list, nil
}

// Delete elimina una devolución y sus líneas.
func (r *ReturnRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete return lines: %w", err)
	}
	_, err := r.q.Exec(context.Background(), `DELETE FROM returns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete return: %w", err)
	}
	return nil
}
