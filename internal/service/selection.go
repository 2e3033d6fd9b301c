package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/entity"
	"github.com/jivehq/jive-api/internal/repository"
)

// SelectionService encapsulates the cart ledger.
type SelectionService struct {
	selections repository.SelectionsRepository
}

// NewSelectionService builds a new SelectionService instance.
func NewSelectionService(selections repository.SelectionsRepository) *SelectionService {
	return &SelectionService{selections: selections}
}

// Add stores a cart entry for the authenticated student. The snapshot fields
// come from the client; the student identity comes from the token, never the
// payload.
func (s *SelectionService) Add(ctx context.Context, studentEmail string, req dto.AddSelectionRequest) (*entity.Selection, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, errors.New("invalid class id")
	}
	if strings.TrimSpace(req.ClassName) == "" {
		return nil, errors.New("class name is required")
	}

	return s.selections.Add(ctx, &entity.Selection{
		StudentEmail:    studentEmail,
		ClassID:         classID,
		ClassName:       req.ClassName,
		Image:           req.Image,
		Price:           req.Price,
		InstructorEmail: req.InstructorEmail,
	})
}

// List returns the caller's cart.
func (s *SelectionService) List(ctx context.Context, email string) ([]entity.Selection, error) {
	return s.selections.ListForStudent(ctx, email)
}

// Remove deletes a cart entry owned by the caller.
func (s *SelectionService) Remove(ctx context.Context, id, studentEmail string) error {
	selectionID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid selection id")
	}
	return s.selections.Delete(ctx, selectionID, studentEmail)
}
