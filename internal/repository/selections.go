package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jivehq/jive-api/internal/entity"
)

// ErrSelectionNotFound is returned when no cart entry matches the lookup criteria.
var ErrSelectionNotFound = errors.New("selection not found")

const selectionColumns = `id, student_email, class_id, class_name, image, price, instructor_email, created_at`

// SelectionsRepository declares persistence operations for the cart ledger.
type SelectionsRepository interface {
	Add(ctx context.Context, selection *entity.Selection) (*entity.Selection, error)
	ListForStudent(ctx context.Context, email string) ([]entity.Selection, error)
	Delete(ctx context.Context, id uuid.UUID, studentEmail string) error
}

// PGXSelectionsRepository implements SelectionsRepository using pgx.
type PGXSelectionsRepository struct {
	pool pgxPool
}

// NewPGXSelectionsRepository wires a pgx backed repository.
func NewPGXSelectionsRepository(pool *pgxpool.Pool) *PGXSelectionsRepository {
	return &PGXSelectionsRepository{pool: pool}
}

// Add inserts a cart entry. Duplicate selections of the same class are allowed;
// display-layer dedup is the caller's concern.
func (r *PGXSelectionsRepository) Add(ctx context.Context, selection *entity.Selection) (*entity.Selection, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO selections (student_email, class_id, class_name, image, price, instructor_email)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+selectionColumns+`
    `, selection.StudentEmail, selection.ClassID, selection.ClassName, selection.Image, selection.Price, selection.InstructorEmail)

	created, err := scanSelection(row)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}
	return created, nil
}

// ListForStudent returns the caller's cart entries, newest first.
func (r *PGXSelectionsRepository) ListForStudent(ctx context.Context, email string) ([]entity.Selection, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectionColumns+` FROM selections WHERE student_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	var selections []entity.Selection
	for rows.Next() {
		selection, err := scanSelection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan selection row: %w", err)
		}
		selections = append(selections, *selection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate selections: %w", err)
	}
	return selections, nil
}

// Delete removes a cart entry. The student email is part of the filter so a
// caller can only ever remove entries it owns.
func (r *PGXSelectionsRepository) Delete(ctx context.Context, id uuid.UUID, studentEmail string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM selections WHERE id = $1 AND student_email = $2`, id, studentEmail)
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrSelectionNotFound
	}
	return nil
}

func scanSelection(row pgx.Row) (*entity.Selection, error) {
	var selection entity.Selection
	if err := row.Scan(
		&selection.ID,
		&selection.StudentEmail,
		&selection.ClassID,
		&selection.ClassName,
		&selection.Image,
		&selection.Price,
		&selection.InstructorEmail,
		&selection.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &selection, nil
}
