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

func TestCreateHook_PositionRoundTrip(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	published := testutil.Publish(t, svc, author.ID, nil)

	position := []services.PointInput{testutil.Pt(0.125, 10), testutil.Pt(33.3, -2.75), testutil.Pt(1e3, 0), testutil.Pt(17, 42.42)}
	hook, err := svc.CreateHook(ctx, services.CreateHookInput{CurrentPanelID: published.PanelIDs[2], Position: position})
	require.NoError(t, err)
	assert.Nil(t, hook.NextPanelSetID)

	stored, err := svc.GetHook(ctx, hook.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{X: 0.125, Y: 10}, {X: 33.3, Y: -2.75}, {X: 1000, Y: 0}, {X: 17, Y: 42.42}}, []models.Point(stored.Position))
}

func TestCreateHook_Validation(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	published := testutil.Publish(t, svc, author.ID, nil)

	_, err := svc.CreateHook(ctx, services.CreateHookInput{
		CurrentPanelID: published.PanelIDs[0],
		Position:       []services.PointInput{testutil.Pt(0, 0), testutil.Pt(1, 1)},
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.CreateHook(ctx, services.CreateHookInput{CurrentPanelID: 999, Position: testutil.Triangle()})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListHooksByPanel(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	set, err := svc.CreatePanelSet(ctx, author.ID, nil)
	require.NoError(t, err)
	panel, err := svc.CreatePanel(ctx, services.CreatePanelInput{PanelSetID: set.ID, Index: testutil.IntPtr(0), Image: "https://images.test/x"})
	require.NoError(t, err)

	hooks, err := svc.ListHooksByPanel(ctx, panel.ID)
	require.NoError(t, err)
	assert.NotNil(t, hooks)
	assert.Empty(t, hooks)

	_, err = svc.ListHooksByPanel(ctx, panel.ID+1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddSetToHook(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	root := testutil.Publish(t, svc, author.ID, nil)
	child, err := svc.CreatePanelSet(ctx, author.ID, nil)
	require.NoError(t, err)

	hook, err := svc.AddSetToHook(ctx, root.HookIDs[0], child.ID)
	require.NoError(t, err)
	require.NotNil(t, hook.NextPanelSetID)
	assert.Equal(t, child.ID, *hook.NextPanelSetID)

	// A hook links exactly once.
	other, err := svc.CreatePanelSet(ctx, author.ID, nil)
	require.NoError(t, err)
	_, err = svc.AddSetToHook(ctx, root.HookIDs[0], other.ID)
	assert.ErrorIs(t, err, services.ErrConflict)

	// A panel set hangs under at most one hook.
	_, err = svc.AddSetToHook(ctx, root.HookIDs[1], child.ID)
	assert.ErrorIs(t, err, services.ErrConflict)

	stored, err := svc.GetHook(ctx, root.HookIDs[1])
	require.NoError(t, err)
	assert.Nil(t, stored.NextPanelSetID)
}

func TestAddSetToHook_RejectsCycle(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	root := testutil.Publish(t, svc, author.ID, nil)
	child := testutil.Publish(t, svc, author.ID, &root.HookIDs[0])

	// The root is not targeted by any hook, so only the cycle check stops this.
	_, err := svc.AddSetToHook(ctx, child.HookIDs[0], root.PanelSetID)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.AddSetToHook(ctx, root.HookIDs[1], root.PanelSetID)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAddSetToHook_NotFound(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	root := testutil.Publish(t, svc, author.ID, nil)

	_, err := svc.AddSetToHook(ctx, 999, root.PanelSetID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.AddSetToHook(ctx, root.HookIDs[0], 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
