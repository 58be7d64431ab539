package usecases

import (
	"context"

	"chatscope/internal/domain"
	"chatscope/pkg/log"
)

// AnalysisCache defines the interface for caching analysis results.
type AnalysisCache interface {
	Get(fileID string, platform domain.Platform) (*domain.AnalysisResult, bool)
	Set(fileID string, platform domain.Platform, result *domain.AnalysisResult)
	Delete(fileID string)
}

// GetAnalysisUseCase analyzes a stored file with a cache-first strategy and
// persists the outcome on the file record.
type GetAnalysisUseCase struct {
	cache    AnalysisCache
	store    FileStore
	analyzer *AnalyzeTranscriptUseCase
}

// NewGetAnalysisUseCase creates a new GetAnalysisUseCase.
func NewGetAnalysisUseCase(cache AnalysisCache, store FileStore, analyzer *AnalyzeTranscriptUseCase) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{
		cache:    cache,
		store:    store,
		analyzer: analyzer,
	}
}

// Execute returns the analysis of a stored file, checking cache first.
// The file's status transitions pending -> processing -> completed or failed;
// a failed run leaves no result behind.
func (uc *GetAnalysisUseCase) Execute(ctx context.Context, fileID, platformTag string) (*domain.AnalysisResult, error) {
	platform, err := domain.ParsePlatform(platformTag)
	if err != nil {
		return nil, err
	}

	if result, found := uc.cache.Get(fileID, platform); found {
		log.GlobalDebugCtx(ctx, "cache hit", "file_id", fileID, "platform", string(platform))
		return result, nil
	}

	log.GlobalDebugCtx(ctx, "cache miss, analyzing", "file_id", fileID, "platform", string(platform))

	file, err := uc.store.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := uc.store.UpdateAnalysis(ctx, fileID, domain.AnalysisProcessing, nil); err != nil {
		return nil, err
	}

	result, err := uc.analyzer.Execute(ctx, file.Content, platformTag)
	if err != nil {
		if updateErr := uc.store.UpdateAnalysis(ctx, fileID, domain.AnalysisFailed, nil); updateErr != nil {
			log.GlobalErrorCtx(ctx, "failed to record analysis failure",
				"file_id", fileID, "error", updateErr.Error())
		}
		return nil, err
	}

	if err := uc.store.UpdateAnalysis(ctx, fileID, domain.AnalysisCompleted, result); err != nil {
		return nil, err
	}

	uc.cache.Set(fileID, platform, result)
	return result, nil
}
