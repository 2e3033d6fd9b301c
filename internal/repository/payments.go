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

var (
	// ErrOrderNotFound is returned when no payment/order matches the lookup.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNoSeatsAvailable aborts fulfillment when a referenced class has no
	// seats left. The whole transaction rolls back, so partial fan-out never
	// reaches the store.
	ErrNoSeatsAvailable = errors.New("no seats available")
)

const paymentColumns = `id, student_email, transaction_id, amount, class_ids, instructor_emails, status, created_at`

// PaymentsRepository declares persistence operations for payments and the
// enrollment transaction.
type PaymentsRepository interface {
	Record(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	ListAll(ctx context.Context) ([]entity.Payment, error)
	ListForStudent(ctx context.Context, email string) ([]entity.Payment, error)
	ListEnrolledClasses(ctx context.Context, email string) ([]entity.Class, error)
	Fulfill(ctx context.Context, id uuid.UUID, status string) (*entity.Payment, error)
}

// PGXPaymentsRepository implements PaymentsRepository using pgx.
type PGXPaymentsRepository struct {
	pool pgxPool
}

// NewPGXPaymentsRepository wires a pgx backed repository.
func NewPGXPaymentsRepository(pool *pgxpool.Pool) *PGXPaymentsRepository {
	return &PGXPaymentsRepository{pool: pool}
}

// Record inserts the payment row and clears the matching cart entries in one
// transaction, so a selection is consumed exactly once per successful payment.
func (r *PGXPaymentsRepository) Record(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start record payment tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
        INSERT INTO payments (student_email, transaction_id, amount, class_ids, instructor_emails, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+paymentColumns+`
    `, payment.StudentEmail, payment.TransactionID, payment.Amount, payment.ClassIDs, payment.InstructorEmails, entity.OrderStatusPending)

	created, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	if _, err := tx.Exec(ctx, `
        DELETE FROM selections WHERE student_email = $1 AND class_id = ANY($2)
    `, payment.StudentEmail, payment.ClassIDs); err != nil {
		return nil, fmt.Errorf("clear purchased selections: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit record payment tx: %w", err)
	}
	return created, nil
}

// FindByID retrieves a single payment/order.
func (r *PGXPaymentsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("query payment by id: %w", err)
	}
	return payment, nil
}

// ListAll returns every order, newest first.
func (r *PGXPaymentsRepository) ListAll(ctx context.Context) ([]entity.Payment, error) {
	return r.list(ctx, `ORDER BY created_at DESC`)
}

// ListForStudent returns the caller's order history.
func (r *PGXPaymentsRepository) ListForStudent(ctx context.Context, email string) ([]entity.Payment, error) {
	return r.list(ctx, `WHERE student_email = $1 ORDER BY created_at DESC`, email)
}

func (r *PGXPaymentsRepository) list(ctx context.Context, tail string, args ...any) ([]entity.Payment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

// ListEnrolledClasses returns the classes covered by the student's fulfilled
// orders.
func (r *PGXPaymentsRepository) ListEnrolledClasses(ctx context.Context, email string) ([]entity.Class, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT `+prefixedClassColumns("c")+`
        FROM classes c
        JOIN payments p ON c.id = ANY(p.class_ids)
        WHERE p.student_email = $1 AND p.status = 'fulfilled'
    `, email)
	if err != nil {
		return nil, fmt.Errorf("list enrolled classes: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// Fulfill runs the enrollment transaction: for every class in the order the
// seat count goes down by one and the enrollment count up by one, every listed
// instructor gains a student, and the order status is set. The seat decrement
// is conditional on available_seats > 0, so two concurrent fulfillments of the
// last seat cannot drive it negative; the loser rolls back entirely.
func (r *PGXPaymentsRepository) Fulfill(ctx context.Context, id uuid.UUID, status string) (*entity.Payment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start fulfill tx: %w", err)
	}
	defer tx.Rollback(ctx)

	order, err := scanPayment(tx.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}

	for _, classID := range order.ClassIDs {
		cmd, err := tx.Exec(ctx, `
            UPDATE classes SET
                total_enroll = total_enroll + 1,
                available_seats = available_seats - 1,
                updated_at = NOW()
            WHERE id = $1 AND available_seats > 0
        `, classID)
		if err != nil {
			return nil, fmt.Errorf("allocate seat for class %s: %w", classID, err)
		}
		if cmd.RowsAffected() == 0 {
			return nil, fmt.Errorf("class %s: %w", classID, ErrNoSeatsAvailable)
		}
	}

	if len(order.InstructorEmails) > 0 {
		if _, err := tx.Exec(ctx, `
            UPDATE users SET total_students = total_students + 1, updated_at = NOW()
            WHERE email = ANY($1) AND role = 'instructor'
        `, order.InstructorEmails); err != nil {
			return nil, fmt.Errorf("bump instructor student counts: %w", err)
		}
	}

	fulfilled, err := scanPayment(tx.QueryRow(ctx, `
        UPDATE payments SET status = $2 WHERE id = $1
        RETURNING `+paymentColumns+`
    `, id, status))
	if err != nil {
		return nil, fmt.Errorf("set order status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit fulfill tx: %w", err)
	}
	return fulfilled, nil
}

func prefixedClassColumns(alias string) string {
	return alias + `.id, ` + alias + `.instructor_email, ` + alias + `.class_name, ` + alias + `.image, ` +
		alias + `.price, ` + alias + `.available_seats, ` + alias + `.total_enroll, ` + alias + `.class_status, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.StudentEmail,
		&payment.TransactionID,
		&payment.Amount,
		&payment.ClassIDs,
		&payment.InstructorEmails,
		&payment.Status,
		&payment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}
