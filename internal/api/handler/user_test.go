package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/adsync/spend-collector-api/internal/usecases/authenticating"
	"github.com/adsync/spend-collector-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	createUserFn func(user *domain.User) (*domain.User, error)
}

func (s *stubAuthenticator) CreateUser(user *domain.User) (*domain.User, error) {
	return s.createUserFn(user)
}

func (s *stubAuthenticator) LoginUser(email, password string) (string, error) {
	return "", nil
}

func (s *stubAuthenticator) GetUserProfile(userID int) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	return nil, nil
}

func TestCreateUser(t *testing.T) {
	service := &stubAuthenticator{
		createUserFn: func(user *domain.User) (*domain.User, error) {
			user.ID = 7
			user.PasswordHash = "$2a$10$hashdasenha"
			user.Active = true
			return user, nil
		},
	}

	body := `{"name":"Maria","email":"maria@example.com","password":"s3nh4"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateUser(service)(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.NotContains(t, rec.Body.String(), "hashdasenha")
}

func TestCreateUser_MissingRequiredData(t *testing.T) {
	service := &stubAuthenticator{
		createUserFn: func(user *domain.User) (*domain.User, error) {
			t.Fatal("o serviço não deveria ser chamado")
			return nil, nil
		},
	}

	body := `{"name":"Maria"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateUser(service)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	service := &stubAuthenticator{
		createUserFn: func(user *domain.User) (*domain.User, error) {
			return nil, authenticating.NewAuthError(
				authenticating.ErrUserAlreadyExists,
				apiErrors.ErrInvalidRequest,
				"Email já cadastrado",
			)
		},
	}

	body := `{"name":"Maria","email":"maria@example.com","password":"s3nh4"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateUser(service)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email já cadastrado")
}
