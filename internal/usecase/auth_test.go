package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/domain/model"
	pkgAuth "github.com/tidespring/breeze/internal/pkg/auth"
	"github.com/tidespring/breeze/internal/test"
)

func newAuthUseCase(users test.UserRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	var gotName, gotEmail, gotHash string
	users := test.UserRepositoryStub{
		CreateFn: func(_ context.Context, name, email, hash string) (*model.User, error) {
			gotName, gotEmail, gotHash = name, email, hash
			return &model.User{ID: 7, Name: name, Email: email, PasswordHash: hash}, nil
		},
	}

	usr, token, err := newAuthUseCase(users).Register(context.Background(), "  Alice ", " Alice@Example.COM ", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.ID != 7 || token != "token" {
		t.Fatalf("unexpected result: id=%d token=%q", usr.ID, token)
	}
	if gotName != "Alice" {
		t.Fatalf("expected trimmed name, got %q", gotName)
	}
	if gotEmail != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", gotEmail)
	}
	if gotHash != "hash:secret" {
		t.Fatalf("expected hashed password, got %q", gotHash)
	}
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "  ", "a@b.com", "secret"},
		{"empty email", "Alice", "   ", "secret"},
		{"empty password", "Alice", "a@b.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := newAuthUseCase(test.UserRepositoryStub{}).Register(context.Background(), tt.userName, tt.email, tt.password)
			if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegisterPropagatesDuplicate(t *testing.T) {
	users := test.UserRepositoryStub{
		CreateFn: func(context.Context, string, string, string) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}

	_, _, err := newAuthUseCase(users).Register(context.Background(), "Alice", "a@b.com", "secret")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegisterPropagatesTokenError(t *testing.T) {
	issueErr := errors.New("sign failed")
	uc := NewAuthUseCase(test.UserRepositoryStub{}, test.HasherStub{}, test.StrategyStub{
		IssueFn: func(int64) (string, error) { return "", issueErr },
	})

	if _, _, err := uc.Register(context.Background(), "Alice", "a@b.com", "secret"); !errors.Is(err, issueErr) {
		t.Fatalf("expected issue error, got %v", err)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	users := test.UserRepositoryStub{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email != "alice@example.com" {
				t.Fatalf("expected normalized lookup, got %q", email)
			}
			return &model.User{ID: 3, Email: email, PasswordHash: "hash:secret"}, nil
		},
	}

	usr, token, err := newAuthUseCase(users).Authenticate(context.Background(), " Alice@Example.com ", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if usr.ID != 3 || token != "token" {
		t.Fatalf("unexpected result: id=%d token=%q", usr.ID, token)
	}
}

func TestAuthenticateUniformFailure(t *testing.T) {
	tests := []struct {
		name  string
		users test.UserRepositoryStub
	}{
		{
			name:  "unknown email",
			users: test.UserRepositoryStub{},
		},
		{
			name: "wrong password",
			users: test.UserRepositoryStub{
				GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
					return &model.User{ID: 3, Email: email, PasswordHash: "hash:other"}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := newAuthUseCase(tt.users).Authenticate(context.Background(), "a@b.com", "secret")
			if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthenticateEmptyCredentials(t *testing.T) {
	uc := newAuthUseCase(test.UserRepositoryStub{})
	if _, _, err := uc.Authenticate(context.Background(), "", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "a@b.com", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticatePropagatesStorageError(t *testing.T) {
	storageErr := errors.New("connection lost")
	users := test.UserRepositoryStub{
		GetByEmailFn: func(context.Context, string) (*model.User, error) {
			return nil, storageErr
		},
	}

	if _, _, err := newAuthUseCase(users).Authenticate(context.Background(), "a@b.com", "secret"); !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestParseToken(t *testing.T) {
	uc := newAuthUseCase(test.UserRepositoryStub{})

	id, err := uc.ParseToken("token")
	if err != nil || id != 1 {
		t.Fatalf("unexpected result: id=%d err=%v", id, err)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	users := test.UserRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}

	usr, err := newAuthUseCase(users).GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if usr.ID != 42 {
		t.Fatalf("unexpected user id: %d", usr.ID)
	}
}
