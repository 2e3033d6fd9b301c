package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/entity"
)

type stubSelectionsRepo struct {
	addFunc    func(ctx context.Context, selection *entity.Selection) (*entity.Selection, error)
	deleteFunc func(ctx context.Context, id uuid.UUID, studentEmail string) error
}

func (s *stubSelectionsRepo) Add(ctx context.Context, selection *entity.Selection) (*entity.Selection, error) {
	if s.addFunc != nil {
		return s.addFunc(ctx, selection)
	}
	return nil, errors.New("add not implemented")
}

func (s *stubSelectionsRepo) ListForStudent(ctx context.Context, email string) ([]entity.Selection, error) {
	return nil, errors.New("list not implemented")
}

func (s *stubSelectionsRepo) Delete(ctx context.Context, id uuid.UUID, studentEmail string) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id, studentEmail)
	}
	return errors.New("delete not implemented")
}

func TestSelectionService_Add(t *testing.T) {
	var stored *entity.Selection
	svc := NewSelectionService(&stubSelectionsRepo{
		addFunc: func(ctx context.Context, selection *entity.Selection) (*entity.Selection, error) {
			stored = selection
			return selection, nil
		},
	})

	classID := uuid.New()
	_, err := svc.Add(context.Background(), "student@example.com", dto.AddSelectionRequest{
		ClassID:         classID.String(),
		ClassName:       "Intro to Jazz Piano",
		Price:           49.99,
		InstructorEmail: "teach@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.StudentEmail != "student@example.com" {
		t.Fatalf("expected token identity on the entry, got %q", stored.StudentEmail)
	}
	if stored.ClassID != classID {
		t.Fatalf("unexpected class id: %v", stored.ClassID)
	}

	if _, err := svc.Add(context.Background(), "student@example.com", dto.AddSelectionRequest{ClassID: "nope", ClassName: "x"}); err == nil {
		t.Fatal("expected error for malformed class id")
	}
	if _, err := svc.Add(context.Background(), "student@example.com", dto.AddSelectionRequest{ClassID: classID.String(), ClassName: " "}); err == nil {
		t.Fatal("expected error for blank class name")
	}
}

func TestSelectionService_Remove(t *testing.T) {
	var gotEmail string
	svc := NewSelectionService(&stubSelectionsRepo{
		deleteFunc: func(ctx context.Context, id uuid.UUID, studentEmail string) error {
			gotEmail = studentEmail
			return nil
		},
	})

	if err := svc.Remove(context.Background(), uuid.NewString(), "student@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotEmail != "student@example.com" {
		t.Fatalf("expected the delete scoped to the caller, got %q", gotEmail)
	}

	if err := svc.Remove(context.Background(), "not-a-uuid", "student@example.com"); err == nil {
		t.Fatal("expected error for malformed selection id")
	}
}
