package services

import (
	"errors"
	"sync"

	"retrofit-backend/models"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore holds in-progress wizard drafts in memory, keyed by draft id
// and scoped to the owning user. Drafts live only for the duration of the
// wizard: saving or backing out of step one removes them.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*models.QuoteDraft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[uuid.UUID]*models.QuoteDraft)}
}

// Create opens a new draft on the details step, seeded with one blank Room
// item so the item list is never empty when the user reaches step three.
func (s *DraftStore) Create(userID uuid.UUID) models.QuoteDraft {
	draft := &models.QuoteDraft{
		ID:     uuid.New(),
		UserID: userID,
		Step:   models.StepDetails,
		Photos: []string{},
		Items:  []models.LineItem{{ID: uuid.New(), Type: models.ItemTypeRoom}},
	}
	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()
	return snapshot(draft)
}

// Get returns a copy of the draft if it exists and belongs to the user.
func (s *DraftStore) Get(userID, draftID uuid.UUID) (models.QuoteDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[draftID]
	if !ok || draft.UserID != userID {
		return models.QuoteDraft{}, ErrDraftNotFound
	}
	return snapshot(draft), nil
}

// Mutate runs fn against the draft under the store lock and returns a copy
// of the result. fn errors are passed through unchanged.
func (s *DraftStore) Mutate(userID, draftID uuid.UUID, fn func(*models.QuoteDraft) error) (models.QuoteDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok || draft.UserID != userID {
		return models.QuoteDraft{}, ErrDraftNotFound
	}
	if err := fn(draft); err != nil {
		return models.QuoteDraft{}, err
	}
	return snapshot(draft), nil
}

// Delete discards the draft. It reports false when the draft does not exist
// or belongs to another user.
func (s *DraftStore) Delete(userID, draftID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok || draft.UserID != userID {
		return false
	}
	delete(s.drafts, draftID)
	return true
}

// snapshot copies the draft so callers never share slices with the stored
// value.
func snapshot(draft *models.QuoteDraft) models.QuoteDraft {
	out := *draft
	out.Photos = append([]string(nil), draft.Photos...)
	out.Items = append([]models.LineItem(nil), draft.Items...)
	return out
}
