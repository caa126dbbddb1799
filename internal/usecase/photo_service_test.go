package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/lamberpool/matchday/internal/domain/photo"
	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
	"github.com/lamberpool/matchday/internal/platform/logging"
)

func newPhotoService(store *memory.Store, assets AssetRemover) *PhotoService {
	return NewPhotoService(store.Photos(), store.Matches(), assets, logging.NewNop(), id.NewSequence("pht"))
}

func TestPhotoService_Create_RejectsOversizedUpload(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newPhotoService(store, nil)

	_, err := service.Create(t.Context(), CreatePhotoInput{
		MatchID:   "mtc-001",
		URL:       "https://cdn.example/big.jpg",
		SizeBytes: photo.MaxUploadBytes + 1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for oversized photo, got %v", err)
	}
}

func TestPhotoService_Create_UnknownMatch(t *testing.T) {
	store := memory.NewStore()
	service := newPhotoService(store, nil)

	_, err := service.Create(t.Context(), CreatePhotoInput{
		MatchID: "missing",
		URL:     "https://cdn.example/p.jpg",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPhotoService_Delete_RemovesRecordDespiteAssetFailure(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	assets := &recordingAssetRemover{err: errors.New("asset store down")}
	service := newPhotoService(store, assets)

	created, err := service.Create(t.Context(), CreatePhotoInput{
		MatchID: "mtc-001",
		URL:     "https://cdn.example/p.jpg",
		AssetID: "asset-9",
	})
	if err != nil {
		t.Fatalf("create photo failed: %v", err)
	}

	if err := service.Delete(t.Context(), created.ID); err != nil {
		t.Fatalf("expected delete to succeed despite asset failure, got %v", err)
	}

	if _, exists, _ := store.Photos().GetByID(t.Context(), created.ID); exists {
		t.Fatal("expected photo record to be deleted")
	}
	if got := assets.snapshot(); len(got) != 1 || got[0] != "asset-9" {
		t.Fatalf("expected asset removal attempt, got %v", got)
	}
}

func TestPhotoService_ListByMatch_NewestFirst(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newPhotoService(store, nil)

	first, err := service.Create(t.Context(), CreatePhotoInput{MatchID: "mtc-001", URL: "https://cdn.example/1.jpg"})
	if err != nil {
		t.Fatalf("create photo failed: %v", err)
	}
	second := photo.Photo{
		ID:         "pht-later",
		MatchID:    "mtc-001",
		URL:        "https://cdn.example/2.jpg",
		UploadedAt: first.UploadedAt.Add(time.Minute),
	}
	if _, err := store.Photos().Create(t.Context(), second); err != nil {
		t.Fatalf("create photo fixture failed: %v", err)
	}

	photos, err := service.ListByMatch(t.Context(), "mtc-001")
	if err != nil {
		t.Fatalf("list photos failed: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if photos[0].ID != "pht-later" {
		t.Fatalf("expected newest photo first, got %s", photos[0].ID)
	}
}
