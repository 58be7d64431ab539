// Package usecases wires the application's operations together. Each use case
// depends on small consumer-side interfaces and is constructed with explicit
// injection; no globals besides the logger.
package usecases

import (
	"context"
	"time"

	"chatscope/internal/analysis"
	"chatscope/internal/domain"
	"chatscope/internal/parser"
	"chatscope/pkg/log"
)

// AnalyzeTranscriptUseCase runs the full parse-and-analyze pipeline over raw
// transcript text. It is pure computation: no storage, no caching.
type AnalyzeTranscriptUseCase struct {
	engine *analysis.Engine
	now    func() time.Time
}

// NewAnalyzeTranscriptUseCase creates a new AnalyzeTranscriptUseCase.
func NewAnalyzeTranscriptUseCase(engine *analysis.Engine) *AnalyzeTranscriptUseCase {
	return &AnalyzeTranscriptUseCase{engine: engine, now: time.Now}
}

// Execute parses the transcript for the given platform tag and analyzes the
// resulting messages.
func (uc *AnalyzeTranscriptUseCase) Execute(ctx context.Context, content, platformTag string) (*domain.AnalysisResult, error) {
	platform, err := domain.ParsePlatform(platformTag)
	if err != nil {
		return nil, err
	}

	messages, err := parser.Parse(content, platform)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, domain.ErrEmptyTranscript
	}

	log.GlobalDebugCtx(ctx, "transcript parsed",
		"platform", string(platform), "messages", len(messages))

	return uc.engine.Analyze(messages, uc.now())
}
