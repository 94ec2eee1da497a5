package mocks

import (
	"context"

	"github.com/andrewpaige1/panelverse-api/storage"
	"github.com/stretchr/testify/mock"
)

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, key, data, mimeType)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockImageStore) SignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) List(ctx context.Context, prefix string) ([]storage.Object, error) {
	args := m.Called(ctx, prefix)
	objects, _ := args.Get(0).([]storage.Object)
	return objects, args.Error(1)
}

func (m *MockImageStore) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
