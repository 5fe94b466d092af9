package services

import (
	"errors"
	"testing"

	"retrofit-backend/models"

	"github.com/google/uuid"
)

func TestDraftStoreCreate(t *testing.T) {
	store := NewDraftStore()
	userID := uuid.New()

	draft := store.Create(userID)

	if draft.UserID != userID {
		t.Errorf("UserID = %s, want %s", draft.UserID, userID)
	}
	if draft.Step != models.StepDetails {
		t.Errorf("Step = %d, want %d", draft.Step, models.StepDetails)
	}
	if len(draft.Items) != 1 || draft.Items[0].Type != models.ItemTypeRoom {
		t.Errorf("Items = %+v, want one seeded room item", draft.Items)
	}
}

func TestDraftStoreGetScopedToUser(t *testing.T) {
	store := NewDraftStore()
	owner := uuid.New()
	draft := store.Create(owner)

	if _, err := store.Get(owner, draft.ID); err != nil {
		t.Fatalf("Get() by owner: %v", err)
	}
	if _, err := store.Get(uuid.New(), draft.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("Get() by other user: err = %v, want ErrDraftNotFound", err)
	}
	if _, err := store.Get(owner, uuid.New()); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("Get() unknown draft: err = %v, want ErrDraftNotFound", err)
	}
}

func TestDraftStoreMutate(t *testing.T) {
	store := NewDraftStore()
	userID := uuid.New()
	draft := store.Create(userID)

	updated, err := store.Mutate(userID, draft.ID, func(d *models.QuoteDraft) error {
		d.ClientName = "Jane Doe"
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate(): %v", err)
	}
	if updated.ClientName != "Jane Doe" {
		t.Errorf("ClientName = %q after mutate", updated.ClientName)
	}

	got, _ := store.Get(userID, draft.ID)
	if got.ClientName != "Jane Doe" {
		t.Errorf("mutation not persisted, ClientName = %q", got.ClientName)
	}
}

func TestDraftStoreMutatePassesThroughErrors(t *testing.T) {
	store := NewDraftStore()
	userID := uuid.New()
	draft := store.Create(userID)

	sentinel := errors.New("boom")
	if _, err := store.Mutate(userID, draft.ID, func(*models.QuoteDraft) error {
		return sentinel
	}); !errors.Is(err, sentinel) {
		t.Errorf("Mutate() err = %v, want sentinel", err)
	}
}

func TestDraftStoreSnapshotIsolation(t *testing.T) {
	store := NewDraftStore()
	userID := uuid.New()
	draft := store.Create(userID)

	// Writing through a returned copy must not leak into the store.
	draft.Items[0].Name = "scribbled"
	draft.Photos = append(draft.Photos, "stray.jpg")

	got, err := store.Get(userID, draft.ID)
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}
	if got.Items[0].Name != "" {
		t.Errorf("Items[0].Name = %q, copy leaked into store", got.Items[0].Name)
	}
	if len(got.Photos) != 0 {
		t.Errorf("Photos = %v, copy leaked into store", got.Photos)
	}
}

func TestDraftStoreDelete(t *testing.T) {
	store := NewDraftStore()
	owner := uuid.New()
	draft := store.Create(owner)

	if store.Delete(uuid.New(), draft.ID) {
		t.Error("Delete() by other user succeeded")
	}
	if !store.Delete(owner, draft.ID) {
		t.Error("Delete() by owner failed")
	}
	if _, err := store.Get(owner, draft.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("Get() after delete: err = %v, want ErrDraftNotFound", err)
	}
}
