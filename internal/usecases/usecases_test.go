package usecases_test

import (
	"context"
	"errors"
	"testing"

	"chatscope/internal/analysis"
	"chatscope/internal/domain"
	"chatscope/internal/usecases"
	"chatscope/test/fixtures"
)

// MockCache is a mock implementation of AnalysisCache.
type MockCache struct {
	results map[string]*domain.AnalysisResult
}

func NewMockCache() *MockCache {
	return &MockCache{results: make(map[string]*domain.AnalysisResult)}
}

func (m *MockCache) key(fileID string, platform domain.Platform) string {
	return fileID + ":" + string(platform)
}

func (m *MockCache) Get(fileID string, platform domain.Platform) (*domain.AnalysisResult, bool) {
	result, found := m.results[m.key(fileID, platform)]
	return result, found
}

func (m *MockCache) Set(fileID string, platform domain.Platform, result *domain.AnalysisResult) {
	m.results[m.key(fileID, platform)] = result
}

func (m *MockCache) Delete(fileID string) {
	for key := range m.results {
		if len(key) > len(fileID) && key[:len(fileID)+1] == fileID+":" {
			delete(m.results, key)
		}
	}
}

// MockFileStore is a mock implementation of FileStore.
type MockFileStore struct {
	files    map[string]*domain.ChatFile
	saveErr  error
	statuses []domain.AnalysisStatus
}

func NewMockFileStore() *MockFileStore {
	return &MockFileStore{files: make(map[string]*domain.ChatFile)}
}

func (m *MockFileStore) Save(ctx context.Context, file *domain.ChatFile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.files[file.ID] = file
	return nil
}

func (m *MockFileStore) List(ctx context.Context) ([]domain.ChatFileSummary, error) {
	summaries := make([]domain.ChatFileSummary, 0, len(m.files))
	for _, f := range m.files {
		summaries = append(summaries, f.Summary())
	}
	return summaries, nil
}

func (m *MockFileStore) Get(ctx context.Context, id string) (*domain.ChatFile, error) {
	file, ok := m.files[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	return file, nil
}

func (m *MockFileStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.files[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(m.files, id)
	return nil
}

func (m *MockFileStore) UpdateAnalysis(ctx context.Context, id string, status domain.AnalysisStatus, result *domain.AnalysisResult) error {
	file, ok := m.files[id]
	if !ok {
		return domain.ErrFileNotFound
	}
	file.AnalysisStatus = status
	file.AnalysisResult = result
	m.statuses = append(m.statuses, status)
	return nil
}

func newAnalyzer() *usecases.AnalyzeTranscriptUseCase {
	return usecases.NewAnalyzeTranscriptUseCase(analysis.NewEngine(analysis.DefaultLexicon()))
}

// AnalyzeTranscriptUseCase tests

func TestAnalyzeTranscriptUseCase_Execute_Success(t *testing.T) {
	// Arrange
	uc := newAnalyzer()

	// Act
	result, err := uc.Execute(context.Background(), fixtures.GenerateWhatsAppTranscript(), "whatsapp")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalMessages != 5 {
		t.Errorf("totalMessages: got %d, want 5", result.TotalMessages)
	}
	if len(result.Users) != 2 {
		t.Errorf("users: got %d, want 2", len(result.Users))
	}
}

func TestAnalyzeTranscriptUseCase_Execute_UnsupportedPlatform(t *testing.T) {
	// Arrange
	uc := newAnalyzer()

	// Act
	_, err := uc.Execute(context.Background(), fixtures.GenerateWhatsAppTranscript(), "discord")

	// Assert
	if !errors.Is(err, domain.ErrUnsupportedPlatform) {
		t.Errorf("err: got %v, want ErrUnsupportedPlatform", err)
	}
}

func TestAnalyzeTranscriptUseCase_Execute_NoParsableLines(t *testing.T) {
	// Arrange
	uc := newAnalyzer()

	// Act
	_, err := uc.Execute(context.Background(), fixtures.GenerateNoiseTranscript(), "whatsapp")

	// Assert
	if !errors.Is(err, domain.ErrEmptyTranscript) {
		t.Errorf("err: got %v, want ErrEmptyTranscript", err)
	}
}

// GetAnalysisUseCase tests

func TestGetAnalysisUseCase_Execute_CacheMiss_AnalyzesAndPersists(t *testing.T) {
	// Arrange
	cache := NewMockCache()
	store := NewMockFileStore()
	store.files["f1"] = &domain.ChatFile{
		ID:             "f1",
		Filename:       "chat.txt",
		Content:        fixtures.GenerateWhatsAppTranscript(),
		AnalysisStatus: domain.AnalysisPending,
	}
	uc := usecases.NewGetAnalysisUseCase(cache, store, newAnalyzer())

	// Act
	result, err := uc.Execute(context.Background(), "f1", "whatsapp")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.TotalMessages != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if store.files["f1"].AnalysisStatus != domain.AnalysisCompleted {
		t.Errorf("status: got %v, want completed", store.files["f1"].AnalysisStatus)
	}
	if store.files["f1"].AnalysisResult == nil {
		t.Error("expected result persisted on the file")
	}
	if _, found := cache.Get("f1", domain.PlatformWhatsApp); !found {
		t.Error("expected result cached")
	}
	// Processing must precede completed.
	if len(store.statuses) != 2 || store.statuses[0] != domain.AnalysisProcessing {
		t.Errorf("status transitions: got %v", store.statuses)
	}
}

func TestGetAnalysisUseCase_Execute_CacheHit_SkipsStore(t *testing.T) {
	// Arrange
	cache := NewMockCache()
	cached := &domain.AnalysisResult{TotalMessages: 42}
	cache.Set("f1", domain.PlatformWhatsApp, cached)
	store := NewMockFileStore()
	uc := usecases.NewGetAnalysisUseCase(cache, store, newAnalyzer())

	// Act
	result, err := uc.Execute(context.Background(), "f1", "whatsapp")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != cached {
		t.Error("expected the cached result back")
	}
	if len(store.statuses) != 0 {
		t.Errorf("expected no store writes, got %v", store.statuses)
	}
}

func TestGetAnalysisUseCase_Execute_FileMissing_ReturnsNotFound(t *testing.T) {
	// Arrange
	uc := usecases.NewGetAnalysisUseCase(NewMockCache(), NewMockFileStore(), newAnalyzer())

	// Act
	_, err := uc.Execute(context.Background(), "missing", "whatsapp")

	// Assert
	if !errors.Is(err, domain.ErrFileNotFound) {
		t.Errorf("err: got %v, want ErrFileNotFound", err)
	}
}

func TestGetAnalysisUseCase_Execute_AnalysisFails_MarksFailed(t *testing.T) {
	// Arrange
	cache := NewMockCache()
	store := NewMockFileStore()
	store.files["f1"] = &domain.ChatFile{
		ID:      "f1",
		Content: fixtures.GenerateNoiseTranscript(),
	}
	uc := usecases.NewGetAnalysisUseCase(cache, store, newAnalyzer())

	// Act
	_, err := uc.Execute(context.Background(), "f1", "whatsapp")

	// Assert
	if !errors.Is(err, domain.ErrEmptyTranscript) {
		t.Errorf("err: got %v, want ErrEmptyTranscript", err)
	}
	if store.files["f1"].AnalysisStatus != domain.AnalysisFailed {
		t.Errorf("status: got %v, want failed", store.files["f1"].AnalysisStatus)
	}
	if _, found := cache.Get("f1", domain.PlatformWhatsApp); found {
		t.Error("expected nothing cached on failure")
	}
}

// File use case tests

func TestUploadFileUseCase_Execute_Success(t *testing.T) {
	// Arrange
	store := NewMockFileStore()
	uc := usecases.NewUploadFileUseCase(store, 1024)

	// Act
	file, err := uc.Execute(context.Background(), "chat.txt", []byte("12/05/23, 09:15 - A: hi"))

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.ID == "" {
		t.Error("expected a generated ID")
	}
	if file.AnalysisStatus != domain.AnalysisPending {
		t.Errorf("status: got %v, want pending", file.AnalysisStatus)
	}
	if _, ok := store.files[file.ID]; !ok {
		t.Error("expected file saved in store")
	}
}

func TestUploadFileUseCase_Execute_RejectsNonTxt(t *testing.T) {
	// Arrange
	uc := usecases.NewUploadFileUseCase(NewMockFileStore(), 1024)

	// Act
	_, err := uc.Execute(context.Background(), "chat.pdf", []byte("data"))

	// Assert
	if !errors.Is(err, domain.ErrInvalidFileType) {
		t.Errorf("err: got %v, want ErrInvalidFileType", err)
	}
}

func TestUploadFileUseCase_Execute_RejectsOversize(t *testing.T) {
	// Arrange
	uc := usecases.NewUploadFileUseCase(NewMockFileStore(), 4)

	// Act
	_, err := uc.Execute(context.Background(), "chat.txt", []byte("too large"))

	// Assert
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Errorf("err: got %v, want ErrFileTooLarge", err)
	}
}

func TestDeleteFileUseCase_Execute_RemovesFileAndCache(t *testing.T) {
	// Arrange
	cache := NewMockCache()
	cache.Set("f1", domain.PlatformWhatsApp, &domain.AnalysisResult{})
	store := NewMockFileStore()
	store.files["f1"] = &domain.ChatFile{ID: "f1"}
	uc := usecases.NewDeleteFileUseCase(store, cache)

	// Act
	err := uc.Execute(context.Background(), "f1")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.files["f1"]; ok {
		t.Error("expected file removed from store")
	}
	if _, found := cache.Get("f1", domain.PlatformWhatsApp); found {
		t.Error("expected cached analyses dropped")
	}
}

func TestDeleteFileUseCase_Execute_MissingFile(t *testing.T) {
	// Arrange
	uc := usecases.NewDeleteFileUseCase(NewMockFileStore(), NewMockCache())

	// Act
	err := uc.Execute(context.Background(), "missing")

	// Assert
	if !errors.Is(err, domain.ErrFileNotFound) {
		t.Errorf("err: got %v, want ErrFileNotFound", err)
	}
}
