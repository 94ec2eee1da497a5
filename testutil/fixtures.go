package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andrewpaige1/panelverse-api/models"
	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/storage"
)

// PNG is the smallest payload accepted as a panel image.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// NewService wires a service to a fresh database and memory image store.
func NewService(t testing.TB) (*services.Service, *storage.MemoryStore) {
	t.Helper()

	images := storage.NewMemoryStore("https://images.test")
	svc := services.NewService(NewDB(t), images)
	svc.PasswordCost = bcrypt.MinCost
	return svc, images
}

// CreateUser registers a user with password "correct horse".
func CreateUser(t testing.TB, svc *services.Service, email string) *models.User {
	t.Helper()

	user, err := svc.CreateUser(context.Background(), services.CreateUserInput{
		DisplayName: "Author",
		Email:       email,
		Password:    "correct horse",
	})
	require.NoError(t, err)
	return user
}

func Pt(x, y float64) services.PointInput {
	return services.PointInput{X: &x, Y: &y}
}

// Triangle returns a valid hook polygon.
func Triangle() []services.PointInput {
	return []services.PointInput{Pt(0, 0), Pt(10, 0), Pt(5, 8.5)}
}

func IntPtr(i int) *int { return &i }

func UintPtr(u uint) *uint { return &u }

// PublishInput is a valid publish with one hook on each panel.
func PublishInput(authorID uuid.UUID, hookID *uint) services.PublishInput {
	hooks := make([]services.HookDescriptor, models.PanelsPerSet)
	images := make([]services.ImageUpload, models.PanelsPerSet)
	for i := range hooks {
		hooks[i] = services.HookDescriptor{Position: Triangle(), PanelIndex: IntPtr(i)}
		images[i] = services.ImageUpload{Filename: fmt.Sprintf("panel-%d.png", i), MimeType: "image/png", Data: PNG}
	}
	return services.PublishInput{AuthorID: authorID, HookID: hookID, Hooks: hooks, Images: images}
}

// Publish publishes a branch and fails the test on error.
func Publish(t testing.TB, svc *services.Service, authorID uuid.UUID, hookID *uint) *services.PublishResult {
	t.Helper()

	result, err := svc.Publish(context.Background(), PublishInput(authorID, hookID))
	require.NoError(t, err)
	return result
}
