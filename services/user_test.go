package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/testutil"
)

func TestCreateUser(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, services.CreateUserInput{
		DisplayName: "  Ink Slinger ",
		Email:       "Ink@Example.com",
		Password:    "correct horse",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ink Slinger", user.DisplayName)
	assert.Equal(t, "ink@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	fetched, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := testutil.NewService(t)
	testutil.CreateUser(t, svc, "dup@example.com")

	_, err := svc.CreateUser(context.Background(), services.CreateUserInput{
		DisplayName: "Other",
		Email:       "DUP@example.com",
		Password:    "another password",
	})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestCreateUser_Validation(t *testing.T) {
	svc, _ := testutil.NewService(t)

	tests := []struct {
		name    string
		in      services.CreateUserInput
		wantErr string
	}{
		{
			name:    "empty display name",
			in:      services.CreateUserInput{DisplayName: "   ", Email: "a@example.com", Password: "long enough"},
			wantErr: "display_name is required",
		},
		{
			name:    "display name too long",
			in:      services.CreateUserInput{DisplayName: "abcdefghijklmnopqrstuvwxyz012345", Email: "a@example.com", Password: "long enough"},
			wantErr: "display_name must be at most 30 characters",
		},
		{
			name:    "bad email",
			in:      services.CreateUserInput{DisplayName: "A", Email: "not-an-email", Password: "long enough"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			in:      services.CreateUserInput{DisplayName: "A", Email: "a@example.com", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := testutil.NewService(t)

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
