package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jivehq/jive-api/internal/auth"
	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/entity"
	"github.com/jivehq/jive-api/internal/repository"
)

var (
	// ErrAlreadyRegistered signals the idempotent-success path of
	// registration: the email is taken, nothing was changed.
	ErrAlreadyRegistered = errors.New("user already registered")
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService coordinates registration, credential validation and token
// issuance. Tokens are never minted for an unverified identity.
type AuthService struct {
	users repository.UsersRepository
	jwt   *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Register creates a student account and returns a JWT. Registering an email
// that already exists is a no-op reported as ErrAlreadyRegistered, not a
// failure: the user collection is left untouched.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return "", err
	}
	if req.Password == "" {
		return "", errors.New("password is required")
	}

	phone, err := NormalizePhone(req.Phone, "")
	if err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user, err := s.users.Create(ctx, email, string(hashed), req.Name, phone, entity.RoleStudent)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return "", ErrAlreadyRegistered
		}
		return "", err
	}

	return s.jwt.GenerateToken(user.ID.String(), user.Email, user.Role)
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.ID.String(), user.Email, user.Role)
}
