package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/entity"
	"github.com/jivehq/jive-api/internal/repository"
)

// UserService encapsulates role directory operations.
type UserService struct {
	repo repository.UsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all users as DTOs.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListInstructors returns instructor accounts, most-subscribed first when
// popular is set.
func (s *UserService) ListInstructors(ctx context.Context, popular bool) ([]dto.UserResponse, error) {
	users, err := s.repo.ListInstructors(ctx, popular)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// GetRole is the self-service role lookup.
func (s *UserService) GetRole(ctx context.Context, email string) (*dto.RoleResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.RoleResponse{Email: user.Email, Role: user.Role}, nil
}

// ChangeRole assigns a role to a user. Promoting to instructor initializes the
// instructor counters.
func (s *UserService) ChangeRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	switch role {
	case entity.RoleStudent, entity.RoleInstructor, entity.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role: %s", role)
	}

	user, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid user id")
	}
	return s.repo.Delete(ctx, userID)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		Role:            u.Role,
		TotalStudents:   u.TotalStudents,
		NumberOfClasses: u.NumberOfClasses,
	}
}

func toUserResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses
}
