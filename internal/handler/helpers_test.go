package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/entity"
)

func newJSONContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()

	var envelope APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %s: %v", rec.Body.String(), err)
	}
	return envelope
}

type stubUsersStore struct {
	createFunc      func(ctx context.Context, email, passwordHash, name string, phone *string, role string) (*entity.User, error)
	findByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

func (s *stubUsersStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.findByEmailFunc != nil {
		return s.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("find by email not implemented")
}

func (s *stubUsersStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, errors.New("find by id not implemented")
}

func (s *stubUsersStore) Create(ctx context.Context, email, passwordHash, name string, phone *string, role string) (*entity.User, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, email, passwordHash, name, phone, role)
	}
	return nil, errors.New("create not implemented")
}

func (s *stubUsersStore) List(ctx context.Context) ([]entity.User, error) {
	return nil, errors.New("list not implemented")
}

func (s *stubUsersStore) ListInstructors(ctx context.Context, popularFirst bool) ([]entity.User, error) {
	return nil, errors.New("list instructors not implemented")
}

func (s *stubUsersStore) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*entity.User, error) {
	return nil, errors.New("update role not implemented")
}

func (s *stubUsersStore) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("delete not implemented")
}

type stubClassesStore struct {
	createFunc    func(ctx context.Context, class *entity.Class) (*entity.Class, error)
	findByIDFunc  func(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	setStatusFunc func(ctx context.Context, id uuid.UUID, status string) (*entity.Class, error)
	listAllFunc   func(ctx context.Context) ([]entity.Class, error)
	deleteFunc    func(ctx context.Context, id uuid.UUID) error
}

func (s *stubClassesStore) Create(ctx context.Context, class *entity.Class) (*entity.Class, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, class)
	}
	return nil, errors.New("create not implemented")
}

func (s *stubClassesStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(ctx, id)
	}
	return nil, errors.New("find by id not implemented")
}

func (s *stubClassesStore) ListApproved(ctx context.Context) ([]entity.Class, error) {
	return nil, errors.New("list approved not implemented")
}

func (s *stubClassesStore) ListPopular(ctx context.Context) ([]entity.Class, error) {
	return nil, errors.New("list popular not implemented")
}

func (s *stubClassesStore) ListAll(ctx context.Context) ([]entity.Class, error) {
	if s.listAllFunc != nil {
		return s.listAllFunc(ctx)
	}
	return nil, errors.New("list all not implemented")
}

func (s *stubClassesStore) ListByInstructor(ctx context.Context, email string) ([]entity.Class, error) {
	return nil, errors.New("list by instructor not implemented")
}

func (s *stubClassesStore) Update(ctx context.Context, id uuid.UUID, instructorEmail string, name, image *string, price *float64, seats *int) (*entity.Class, error) {
	return nil, errors.New("update not implemented")
}

func (s *stubClassesStore) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Class, error) {
	if s.setStatusFunc != nil {
		return s.setStatusFunc(ctx, id, status)
	}
	return nil, errors.New("set status not implemented")
}

func (s *stubClassesStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return errors.New("delete not implemented")
}

type stubPaymentsStore struct {
	recordFunc  func(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	fulfillFunc func(ctx context.Context, id uuid.UUID, status string) (*entity.Payment, error)
	listAllFunc func(ctx context.Context) ([]entity.Payment, error)
}

func (s *stubPaymentsStore) Record(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	if s.recordFunc != nil {
		return s.recordFunc(ctx, payment)
	}
	return nil, errors.New("record not implemented")
}

func (s *stubPaymentsStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return nil, errors.New("find by id not implemented")
}

func (s *stubPaymentsStore) ListAll(ctx context.Context) ([]entity.Payment, error) {
	if s.listAllFunc != nil {
		return s.listAllFunc(ctx)
	}
	return nil, errors.New("list all not implemented")
}

func (s *stubPaymentsStore) ListForStudent(ctx context.Context, email string) ([]entity.Payment, error) {
	return nil, errors.New("list for student not implemented")
}

func (s *stubPaymentsStore) ListEnrolledClasses(ctx context.Context, email string) ([]entity.Class, error) {
	return nil, errors.New("list enrolled classes not implemented")
}

func (s *stubPaymentsStore) Fulfill(ctx context.Context, id uuid.UUID, status string) (*entity.Payment, error) {
	if s.fulfillFunc != nil {
		return s.fulfillFunc(ctx, id, status)
	}
	return nil, errors.New("fulfill not implemented")
}

type stubGateway struct {
	createFunc func(ctx context.Context, amount float64) (string, error)
}

func (s *stubGateway) CreateIntent(ctx context.Context, amount float64) (string, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, amount)
	}
	return "", errors.New("create intent not implemented")
}
