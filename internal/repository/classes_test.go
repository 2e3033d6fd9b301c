package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jivehq/jive-api/internal/entity"
)

func scanClassFixture(status string, seats int) func(dest ...any) error {
	return func(dest ...any) error {
		created := time.Now()
		*dest[0].(*uuid.UUID) = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
		*dest[1].(*string) = "teach@example.com"
		*dest[2].(*string) = "Intro to Jazz Piano"
		*dest[3].(**string) = nil
		*dest[4].(*float64) = 49.99
		*dest[5].(*int) = seats
		*dest[6].(*int) = 0
		*dest[7].(*string) = status
		*dest[8].(*time.Time) = created
		*dest[9].(*time.Time) = created
		return nil
	}
}

func TestPGXClassesRepository_Create(t *testing.T) {
	var gotQuery string
	repo := &PGXClassesRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			gotQuery = query
			return &stubRow{scan: scanClassFixture(entity.ClassStatusPending, 20)}
		},
	}}

	class, err := repo.Create(context.Background(), &entity.Class{
		InstructorEmail: "teach@example.com",
		ClassName:       "Intro to Jazz Piano",
		Price:           49.99,
		AvailableSeats:  20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class.ClassStatus != entity.ClassStatusPending {
		t.Fatalf("expected pending class, got %q", class.ClassStatus)
	}
	if !strings.Contains(gotQuery, "INSERT INTO classes") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}

func TestPGXClassesRepository_Update(t *testing.T) {
	var gotQuery string
	var gotArgs []any
	repo := &PGXClassesRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			gotQuery = query
			gotArgs = args
			return &stubRow{scan: scanClassFixture(entity.ClassStatusPending, 15)}
		},
	}}

	seats := 15
	class, err := repo.Update(context.Background(), uuid.New(), "teach@example.com", nil, nil, nil, &seats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class.AvailableSeats != 15 {
		t.Fatalf("unexpected class: %+v", class)
	}
	// edits always return the class to review and stay scoped to the owner
	if !strings.Contains(gotQuery, "class_status = 'pending'") {
		t.Fatalf("expected status reset in query: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "instructor_email") {
		t.Fatalf("expected owner scoping in query: %s", gotQuery)
	}
	if gotArgs[len(gotArgs)-1] != "teach@example.com" {
		t.Fatalf("expected owner email as final arg, got %v", gotArgs)
	}
}

func TestPGXClassesRepository_Update_NotOwned(t *testing.T) {
	repo := &PGXClassesRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}}

	name := "New Name"
	if _, err := repo.Update(context.Background(), uuid.New(), "other@example.com", &name, nil, nil, nil); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func setStatusTx(prevStatus string, userUpdates *int) *stubTx {
	tx := &stubTx{}
	tx.queryRowFunc = func(ctx context.Context, query string, args ...any) pgx.Row {
		if strings.Contains(query, "FOR UPDATE") {
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*string) = prevStatus
				*dest[1].(*string) = "teach@example.com"
				return nil
			}}
		}
		return &stubRow{scan: scanClassFixture(entity.ClassStatusApproved, 20)}
	}
	tx.execFunc = func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
		if strings.Contains(query, "UPDATE users") {
			*userUpdates++
		}
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	return tx
}

func TestPGXClassesRepository_SetStatus_BumpsCounterOnApproval(t *testing.T) {
	userUpdates := 0
	tx := setStatusTx(entity.ClassStatusPending, &userUpdates)
	repo := &PGXClassesRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	class, err := repo.SetStatus(context.Background(), uuid.New(), entity.ClassStatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class.ClassStatus != entity.ClassStatusApproved {
		t.Fatalf("unexpected class: %+v", class)
	}
	if userUpdates != 1 {
		t.Fatalf("expected one instructor counter bump, got %d", userUpdates)
	}
	if !tx.committed {
		t.Fatal("expected transaction commit")
	}
}

func TestPGXClassesRepository_SetStatus_NoBumpOnRepeatApproval(t *testing.T) {
	userUpdates := 0
	tx := setStatusTx(entity.ClassStatusApproved, &userUpdates)
	repo := &PGXClassesRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	if _, err := repo.SetStatus(context.Background(), uuid.New(), entity.ClassStatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userUpdates != 0 {
		t.Fatalf("expected no counter bump on repeat approval, got %d", userUpdates)
	}
}

func TestPGXClassesRepository_SetStatus_NoBumpOnDenial(t *testing.T) {
	userUpdates := 0
	tx := setStatusTx(entity.ClassStatusPending, &userUpdates)
	repo := &PGXClassesRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	if _, err := repo.SetStatus(context.Background(), uuid.New(), entity.ClassStatusDenied); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userUpdates != 0 {
		t.Fatalf("expected no counter bump on denial, got %d", userUpdates)
	}
}

func TestPGXClassesRepository_SetStatus_NotFound(t *testing.T) {
	tx := &stubTx{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	repo := &PGXClassesRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	if _, err := repo.SetStatus(context.Background(), uuid.New(), entity.ClassStatusApproved); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
	if !tx.rolledBack {
		t.Fatal("expected transaction rollback")
	}
}

func TestPGXClassesRepository_Delete(t *testing.T) {
	repo := &PGXClassesRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}}

	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}
