package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatscope/internal/adapters/storage"
	"chatscope/internal/domain"
)

func seed(t *testing.T, store *storage.Memory, id string, uploadedAt time.Time) {
	t.Helper()
	err := store.Save(context.Background(), &domain.ChatFile{
		ID:             id,
		Filename:       id + ".txt",
		Size:           10,
		Content:        "content of " + id,
		UploadedAt:     uploadedAt,
		AnalysisStatus: domain.AnalysisPending,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestMemory_SaveAndGet_RoundTrips(t *testing.T) {
	// Arrange
	store := storage.NewMemory()
	seed(t, store, "f1", time.Now())

	// Act
	file, err := store.Get(context.Background(), "f1")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Filename != "f1.txt" || file.Content != "content of f1" {
		t.Errorf("unexpected file: %+v", file)
	}
}

func TestMemory_Get_ReturnsCopy(t *testing.T) {
	// Arrange
	store := storage.NewMemory()
	seed(t, store, "f1", time.Now())

	// Act
	first, _ := store.Get(context.Background(), "f1")
	first.Filename = "mutated.txt"
	second, err := store.Get(context.Background(), "f1")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Filename != "f1.txt" {
		t.Error("expected stored file unaffected by caller mutation")
	}
}

func TestMemory_Get_Missing_ReturnsNotFound(t *testing.T) {
	// Arrange
	store := storage.NewMemory()

	// Act
	_, err := store.Get(context.Background(), "nope")

	// Assert
	if !errors.Is(err, domain.ErrFileNotFound) {
		t.Errorf("err: got %v, want ErrFileNotFound", err)
	}
}

func TestMemory_List_NewestFirst(t *testing.T) {
	// Arrange
	store := storage.NewMemory()
	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	seed(t, store, "old", base)
	seed(t, store, "new", base.Add(time.Hour))

	// Act
	summaries, err := store.List(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len: got %d, want 2", len(summaries))
	}
	if summaries[0].ID != "new" || summaries[1].ID != "old" {
		t.Errorf("order: got %s, %s", summaries[0].ID, summaries[1].ID)
	}
}

func TestMemory_Delete_RemovesFile(t *testing.T) {
	// Arrange
	store := storage.NewMemory()
	seed(t, store, "f1", time.Now())

	// Act
	err := store.Delete(context.Background(), "f1")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(context.Background(), "f1"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Error("expected file gone after delete")
	}
}

func TestMemory_Delete_Missing_ReturnsNotFound(t *testing.T) {
	// Arrange
	store := storage.NewMemory()

	// Act
	err := store.Delete(context.Background(), "nope")

	// Assert
	if !errors.Is(err, domain.ErrFileNotFound) {
		t.Errorf("err: got %v, want ErrFileNotFound", err)
	}
}

func TestMemory_UpdateAnalysis_PersistsStatusAndResult(t *testing.T) {
	// Arrange
	store := storage.NewMemory()
	seed(t, store, "f1", time.Now())
	result := &domain.AnalysisResult{TotalMessages: 3}

	// Act
	err := store.UpdateAnalysis(context.Background(), "f1", domain.AnalysisCompleted, result)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	file, _ := store.Get(context.Background(), "f1")
	if file.AnalysisStatus != domain.AnalysisCompleted {
		t.Errorf("status: got %v, want completed", file.AnalysisStatus)
	}
	if file.AnalysisResult == nil || file.AnalysisResult.TotalMessages != 3 {
		t.Errorf("result: got %+v", file.AnalysisResult)
	}
}
