package storage

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-memory ImageStore for development and tests.
// It is safe for concurrent use.
type MemoryStore struct {
	baseURL string
	objects map[string]memoryObject
	now     func() time.Time
	mu      sync.RWMutex
}

type memoryObject struct {
	data         []byte
	mimeType     string
	lastModified time.Time
}

// NewMemoryStore creates an empty store whose URLs start with baseURL.
func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "memory://images"
	}
	return &MemoryStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]memoryObject),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for LastModified.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[key] = memoryObject{data: buf, mimeType: mimeType, lastModified: m.now()}
	return key, nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	buf := make([]byte, len(obj.data))
	copy(buf, obj.data)
	return buf, nil
}

func (m *MemoryStore) SignedURL(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.objects[key]; !ok {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	expires := m.now().Add(15 * time.Minute).Unix()
	return fmt.Sprintf("%s?expires=%d", m.URL(key), expires), nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, key)
	return key, nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var objects []Object
	for key, obj := range m.objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, Object{Key: key, LastModified: obj.lastModified})
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (m *MemoryStore) URL(key string) string {
	return m.baseURL + "/" + url.PathEscape(key)
}

// Has reports whether key is stored.
func (m *MemoryStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
