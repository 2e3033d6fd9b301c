package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/entity"
	"github.com/jivehq/jive-api/internal/repository"
)

// ErrNotClassOwner is returned when a caller mutates a class it does not own.
var ErrNotClassOwner = errors.New("not the class owner")

// ClassService encapsulates the class catalog lifecycle.
type ClassService struct {
	classes repository.ClassesRepository
}

// NewClassService builds a new ClassService instance.
func NewClassService(classes repository.ClassesRepository) *ClassService {
	return &ClassService{classes: classes}
}

// Create submits a new class for review. It always starts pending.
func (s *ClassService) Create(ctx context.Context, instructorEmail string, req dto.CreateClassRequest) (*entity.Class, error) {
	name := strings.TrimSpace(req.ClassName)
	if name == "" {
		return nil, errors.New("class name is required")
	}
	if req.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if req.AvailableSeats < 0 {
		return nil, errors.New("available seats must not be negative")
	}

	return s.classes.Create(ctx, &entity.Class{
		InstructorEmail: instructorEmail,
		ClassName:       name,
		Image:           req.Image,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
	})
}

// Update applies instructor edits. The repository scopes the update to the
// owning instructor and resets the class to pending for re-review.
func (s *ClassService) Update(ctx context.Context, id, instructorEmail string, req dto.UpdateClassRequest) (*entity.Class, error) {
	classID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid class id")
	}

	if req.ClassName != nil && strings.TrimSpace(*req.ClassName) == "" {
		return nil, errors.New("class name cannot be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if req.AvailableSeats != nil && *req.AvailableSeats < 0 {
		return nil, errors.New("available seats must not be negative")
	}

	return s.classes.Update(ctx, classID, instructorEmail, req.ClassName, req.Image, req.Price, req.AvailableSeats)
}

// SetStatus approves or denies a class under admin review.
func (s *ClassService) SetStatus(ctx context.Context, id, status string) (*entity.Class, error) {
	classID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid class id")
	}

	switch status {
	case entity.ClassStatusApproved, entity.ClassStatusDenied:
	default:
		return nil, fmt.Errorf("unknown class status: %s", status)
	}

	return s.classes.SetStatus(ctx, classID, status)
}

// Delete removes a class. Admins may delete any class; instructors only their
// own. Ownership is checked before the delete touches the store.
func (s *ClassService) Delete(ctx context.Context, id, callerEmail, callerRole string) error {
	classID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid class id")
	}

	if callerRole != entity.RoleAdmin {
		class, err := s.classes.FindByID(ctx, classID)
		if err != nil {
			return err
		}
		if !strings.EqualFold(class.InstructorEmail, callerEmail) {
			return ErrNotClassOwner
		}
	}

	return s.classes.Delete(ctx, classID)
}

// Get returns a single class.
func (s *ClassService) Get(ctx context.Context, id string) (*entity.Class, error) {
	classID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid class id")
	}
	return s.classes.FindByID(ctx, classID)
}

// ListApproved returns the public catalog.
func (s *ClassService) ListApproved(ctx context.Context) ([]entity.Class, error) {
	return s.classes.ListApproved(ctx)
}

// ListPopular returns all classes ordered by enrollment.
func (s *ClassService) ListPopular(ctx context.Context) ([]entity.Class, error) {
	return s.classes.ListPopular(ctx)
}

// ListAll returns every class for the admin review queue.
func (s *ClassService) ListAll(ctx context.Context) ([]entity.Class, error) {
	return s.classes.ListAll(ctx)
}

// ListByInstructor returns one instructor's classes.
func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]entity.Class, error) {
	return s.classes.ListByInstructor(ctx, email)
}
