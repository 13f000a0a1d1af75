package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()
	query := regexp.QuoteMeta("SELECT id, login, password_hash, created_at FROM users WHERE login = $1")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "alice",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
					AddRow(1, "alice", "hashed_password", createdAt)
				mock.ExpectQuery(query).WithArgs("alice").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "alice",
				PasswordHash: "hashed_password",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("nobody").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "alice",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("alice").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed_password").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
			result: &domain.User{
				ID:           1,
				Login:        "bob",
				PasswordHash: "hashed_password",
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Login already taken",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed_password").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed_password").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.User{Login: "bob", PasswordHash: "hashed_password"})
			switch {
			case tt.expectErr == nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			case errors.Is(tt.expectErr, domain.ErrConflict):
				assert.ErrorIs(t, err, domain.ErrConflict)
			default:
				assert.EqualError(t, err, tt.expectErr.Error())
			}
		})
	}
}
