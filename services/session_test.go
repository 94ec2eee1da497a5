package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/panelverse-api/models"
	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/testutil"
)

func TestCreateSession(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, svc, "reader@example.com")

	session, err := svc.CreateSession(ctx, "Reader@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)

	fetched, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.User.Email)
}

func TestCreateSession_ReplacesEarlierSession(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, svc, "reader@example.com")

	first, err := svc.CreateSession(ctx, user.Email, "correct horse")
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, user.Email, "correct horse")
	require.NoError(t, err)

	_, err = svc.GetSession(ctx, first.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.GetSession(ctx, second.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), testutil.Count(t, svc.DB, &models.Session{}))
}

func TestCreateSession_InvalidCredentials(t *testing.T) {
	svc, _ := testutil.NewService(t)
	testutil.CreateUser(t, svc, "reader@example.com")

	_, err := svc.CreateSession(context.Background(), "reader@example.com", "wrong password")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.CreateSession(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, services.ErrValidation)
}
