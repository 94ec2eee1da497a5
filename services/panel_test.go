package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/testutil"
)

func TestCreatePanel(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")
	set, err := svc.CreatePanelSet(ctx, author.ID, nil)
	require.NoError(t, err)

	panel, err := svc.CreatePanel(ctx, services.CreatePanelInput{
		PanelSetID: set.ID,
		Index:      testutil.IntPtr(0),
		Image:      "https://images.test/1_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, set.ID, panel.PanelSetID)
	assert.Equal(t, 0, panel.Index)

	_, err = svc.CreatePanel(ctx, services.CreatePanelInput{
		PanelSetID: set.ID + 1,
		Index:      testutil.IntPtr(1),
		Image:      "https://images.test/1_def",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.CreatePanel(ctx, services.CreatePanelInput{
		PanelSetID: set.ID,
		Index:      testutil.IntPtr(3),
		Image:      "https://images.test/1_def",
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestListPanelsByPanelSet(t *testing.T) {
	svc, _ := testutil.NewService(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, svc, "author@example.com")

	empty, err := svc.CreatePanelSet(ctx, author.ID, nil)
	require.NoError(t, err)
	panels, err := svc.ListPanelsByPanelSet(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, panels)

	published := testutil.Publish(t, svc, author.ID, nil)
	panels, err = svc.ListPanelsByPanelSet(ctx, published.PanelSetID)
	require.NoError(t, err)
	require.Len(t, panels, 3)
	for i, panel := range panels {
		assert.Equal(t, i, panel.Index)
		assert.Equal(t, published.PanelIDs[i], panel.ID)
	}

	_, err = svc.ListPanelsByPanelSet(ctx, published.PanelSetID+100)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPanelImageURL(t *testing.T) {
	svc, _ := testutil.NewService(t)
	author := testutil.CreateUser(t, svc, "author@example.com")
	published := testutil.Publish(t, svc, author.ID, nil)

	signed, err := svc.PanelImageURL(context.Background(), published.PanelIDs[1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, published.ImageURLs[1]+"?expires="))

	_, err = svc.PanelImageURL(context.Background(), 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
