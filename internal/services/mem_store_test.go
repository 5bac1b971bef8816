package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"wander/internal/models/db_models"
)

// memDocRepo is an in-memory stand-in for the per-user document store.
type memDocRepo struct {
	mu   sync.Mutex
	docs map[string][]byte
	// failPuts makes every Put error, to exercise the optimistic paths.
	failPuts bool
	putErr   error
}

func newMemDocRepo() *memDocRepo {
	return &memDocRepo{docs: make(map[string][]byte)}
}

func (m *memDocRepo) key(userID, docKey string) string { return userID + "/" + docKey }

func (m *memDocRepo) Get(_ context.Context, userID, docKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.docs[m.key(userID, docKey)]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (m *memDocRepo) Put(_ context.Context, userID, docKey string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPuts {
		return m.putErr
	}
	m.docs[m.key(userID, docKey)] = value
	return nil
}

func (m *memDocRepo) Delete(_ context.Context, userID, docKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, m.key(userID, docKey))
	return nil
}

func (m *memDocRepo) seedLiked(t *testing.T, userID string, places []db_models.TravelPlace) {
	t.Helper()
	raw, err := json.Marshal(places)
	require.NoError(t, err)
	require.NoError(t, m.Put(context.Background(), userID, db_models.DocLikedPlaces, raw))
}

func (m *memDocRepo) journey(t *testing.T, userID string) *db_models.ActiveJourney {
	t.Helper()
	raw, err := m.Get(context.Background(), userID, db_models.DocActiveJourney)
	require.NoError(t, err)
	if raw == nil {
		return nil
	}
	var journey db_models.ActiveJourney
	require.NoError(t, json.Unmarshal(raw, &journey))
	return &journey
}

// noShuffle keeps input order, so truncation takes the top-scored slice.
type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

// reverseShuffle reverses, the simplest visible permutation.
type reverseShuffle struct{}

func (reverseShuffle) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
