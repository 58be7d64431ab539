package usecases

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"chatscope/internal/domain"
	"chatscope/pkg/log"
)

// FileStore defines the interface for persisting uploaded chat files.
type FileStore interface {
	Save(ctx context.Context, file *domain.ChatFile) error
	List(ctx context.Context) ([]domain.ChatFileSummary, error)
	Get(ctx context.Context, id string) (*domain.ChatFile, error)
	Delete(ctx context.Context, id string) error
	UpdateAnalysis(ctx context.Context, id string, status domain.AnalysisStatus, result *domain.AnalysisResult) error
}

// UploadFileUseCase validates and stores an uploaded transcript export.
type UploadFileUseCase struct {
	store   FileStore
	maxSize int64
}

// NewUploadFileUseCase creates a new UploadFileUseCase. maxSize is the upload
// limit in bytes.
func NewUploadFileUseCase(store FileStore, maxSize int64) *UploadFileUseCase {
	return &UploadFileUseCase{store: store, maxSize: maxSize}
}

// Execute stores the upload after validating type and size. Only plain-text
// exports are accepted; the analysis starts out pending.
func (uc *UploadFileUseCase) Execute(ctx context.Context, filename string, content []byte) (*domain.ChatFile, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".txt") {
		return nil, domain.ErrInvalidFileType
	}
	if int64(len(content)) > uc.maxSize {
		return nil, domain.ErrFileTooLarge
	}

	file := &domain.ChatFile{
		ID:             uuid.NewString(),
		Filename:       filename,
		Size:           int64(len(content)),
		Content:        string(content),
		UploadedAt:     time.Now().UTC(),
		AnalysisStatus: domain.AnalysisPending,
	}

	if err := uc.store.Save(ctx, file); err != nil {
		return nil, err
	}

	log.GlobalInfoCtx(ctx, "file uploaded",
		"file_id", file.ID, "filename", file.Filename, "size", file.Size)
	return file, nil
}

// ListFilesUseCase lists stored files without content or results.
type ListFilesUseCase struct {
	store FileStore
}

func NewListFilesUseCase(store FileStore) *ListFilesUseCase {
	return &ListFilesUseCase{store: store}
}

func (uc *ListFilesUseCase) Execute(ctx context.Context) ([]domain.ChatFileSummary, error) {
	return uc.store.List(ctx)
}

// GetFileUseCase fetches one stored file by ID, including any persisted
// analysis result.
type GetFileUseCase struct {
	store FileStore
}

func NewGetFileUseCase(store FileStore) *GetFileUseCase {
	return &GetFileUseCase{store: store}
}

func (uc *GetFileUseCase) Execute(ctx context.Context, id string) (*domain.ChatFile, error) {
	return uc.store.Get(ctx, id)
}

// DeleteFileUseCase removes a stored file and drops its cached analyses.
type DeleteFileUseCase struct {
	store FileStore
	cache AnalysisCache
}

func NewDeleteFileUseCase(store FileStore, cache AnalysisCache) *DeleteFileUseCase {
	return &DeleteFileUseCase{store: store, cache: cache}
}

func (uc *DeleteFileUseCase) Execute(ctx context.Context, id string) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete(id)
	log.GlobalInfoCtx(ctx, "file deleted", "file_id", id)
	return nil
}
