package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jivehq/jive-api/internal/entity"
)

// ErrClassNotFound is returned when no class matches the lookup criteria.
var ErrClassNotFound = errors.New("class not found")

const classColumns = `id, instructor_email, class_name, image, price, available_seats, total_enroll, class_status, created_at, updated_at`

// ClassesRepository declares persistence operations for the class catalog.
type ClassesRepository interface {
	Create(ctx context.Context, class *entity.Class) (*entity.Class, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	ListApproved(ctx context.Context) ([]entity.Class, error)
	ListPopular(ctx context.Context) ([]entity.Class, error)
	ListAll(ctx context.Context) ([]entity.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]entity.Class, error)
	Update(ctx context.Context, id uuid.UUID, instructorEmail string, name, image *string, price *float64, seats *int) (*entity.Class, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Class, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXClassesRepository implements ClassesRepository using pgx.
type PGXClassesRepository struct {
	pool pgxPool
}

// NewPGXClassesRepository wires a pgx backed repository.
func NewPGXClassesRepository(pool *pgxpool.Pool) *PGXClassesRepository {
	return &PGXClassesRepository{pool: pool}
}

// Create inserts a class in pending status.
func (r *PGXClassesRepository) Create(ctx context.Context, class *entity.Class) (*entity.Class, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO classes (instructor_email, class_name, image, price, available_seats, total_enroll, class_status)
        VALUES ($1, $2, $3, $4, $5, 0, $6)
        RETURNING `+classColumns+`
    `, class.InstructorEmail, class.ClassName, class.Image, class.Price, class.AvailableSeats, entity.ClassStatusPending)

	created, err := scanClass(row)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return created, nil
}

// FindByID retrieves a single class.
func (r *PGXClassesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+classColumns+` FROM classes WHERE id = $1`, id)
	class, err := scanClass(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("query class by id: %w", err)
	}
	return class, nil
}

// ListApproved returns classes visible to the public catalog.
func (r *PGXClassesRepository) ListApproved(ctx context.Context) ([]entity.Class, error) {
	return r.list(ctx, `WHERE class_status = 'approved' ORDER BY created_at DESC`)
}

// ListPopular returns all classes ordered by enrollment count.
func (r *PGXClassesRepository) ListPopular(ctx context.Context) ([]entity.Class, error) {
	return r.list(ctx, `ORDER BY total_enroll DESC, created_at DESC`)
}

// ListAll returns every class regardless of status.
func (r *PGXClassesRepository) ListAll(ctx context.Context) ([]entity.Class, error) {
	return r.list(ctx, `ORDER BY created_at DESC`)
}

// ListByInstructor returns the classes owned by one instructor.
func (r *PGXClassesRepository) ListByInstructor(ctx context.Context, email string) ([]entity.Class, error) {
	return r.list(ctx, `WHERE instructor_email = $1 ORDER BY created_at DESC`, email)
}

func (r *PGXClassesRepository) list(ctx context.Context, tail string, args ...any) ([]entity.Class, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+classColumns+` FROM classes `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// Update patches class fields. The update is scoped to the owning instructor,
// and any edit resets the class to pending for re-review.
func (r *PGXClassesRepository) Update(ctx context.Context, id uuid.UUID, instructorEmail string, name, image *string, price *float64, seats *int) (*entity.Class, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if name != nil {
		setClauses = append(setClauses, fmt.Sprintf("class_name = $%d", idx))
		args = append(args, *name)
		idx++
	}
	if image != nil {
		setClauses = append(setClauses, fmt.Sprintf("image = $%d", idx))
		args = append(args, *image)
		idx++
	}
	if price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", idx))
		args = append(args, *price)
		idx++
	}
	if seats != nil {
		setClauses = append(setClauses, fmt.Sprintf("available_seats = $%d", idx))
		args = append(args, *seats)
		idx++
	}

	setClauses = append(setClauses, "class_status = 'pending'", "updated_at = NOW()")
	args = append(args, id, instructorEmail)

	query := fmt.Sprintf(
		`UPDATE classes SET %s WHERE id = $%d AND instructor_email = $%d RETURNING `+classColumns,
		strings.Join(setClauses, ", "), idx, idx+1,
	)

	class, err := scanClass(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("update class: %w", err)
	}
	return class, nil
}

// SetStatus transitions a class through admin review. The owning instructor's
// number_of_classes is bumped only on a genuine pending-to-approved edge, so
// repeated approvals or denials never inflate the counter.
func (r *PGXClassesRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Class, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start set status tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var prevStatus, instructorEmail string
	err = tx.QueryRow(ctx, `SELECT class_status, instructor_email FROM classes WHERE id = $1 FOR UPDATE`, id).
		Scan(&prevStatus, &instructorEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("lock class for status change: %w", err)
	}

	class, err := scanClass(tx.QueryRow(ctx, `
        UPDATE classes SET class_status = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING `+classColumns+`
    `, id, status))
	if err != nil {
		return nil, fmt.Errorf("set class status: %w", err)
	}

	if status == entity.ClassStatusApproved && prevStatus == entity.ClassStatusPending {
		if _, err := tx.Exec(ctx, `
            UPDATE users SET number_of_classes = number_of_classes + 1, updated_at = NOW()
            WHERE email = $1 AND role = 'instructor'
        `, instructorEmail); err != nil {
			return nil, fmt.Errorf("bump instructor class count: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit set status tx: %w", err)
	}
	return class, nil
}

// Delete removes a class by id.
func (r *PGXClassesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrClassNotFound
	}
	return nil
}

func scanClass(row pgx.Row) (*entity.Class, error) {
	var class entity.Class
	if err := row.Scan(
		&class.ID,
		&class.InstructorEmail,
		&class.ClassName,
		&class.Image,
		&class.Price,
		&class.AvailableSeats,
		&class.TotalEnroll,
		&class.ClassStatus,
		&class.CreatedAt,
		&class.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &class, nil
}

func scanClasses(rows pgx.Rows) ([]entity.Class, error) {
	var classes []entity.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, *class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}
	return classes, nil
}
