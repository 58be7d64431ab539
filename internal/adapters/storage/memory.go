package storage

import (
	"context"
	"sort"
	"sync"

	"chatscope/internal/domain"
)

// Memory is a mutex-guarded in-memory FileStore. Contents do not survive a
// restart; it backs deployments without a database and the test suite.
type Memory struct {
	mu    sync.RWMutex
	files map[string]*domain.ChatFile
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string]*domain.ChatFile)}
}

func (m *Memory) Save(ctx context.Context, file *domain.ChatFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *file
	m.files[file.ID] = &copied
	return nil
}

// List returns summaries newest-first, matching the Postgres ordering.
func (m *Memory) List(ctx context.Context) ([]domain.ChatFileSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]domain.ChatFileSummary, 0, len(m.files))
	for _, file := range m.files {
		summaries = append(summaries, file.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UploadedAt.After(summaries[j].UploadedAt)
	})
	return summaries, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*domain.ChatFile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, ok := m.files[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	copied := *file
	return &copied, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(m.files, id)
	return nil
}

func (m *Memory) UpdateAnalysis(ctx context.Context, id string, status domain.AnalysisStatus, result *domain.AnalysisResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	file, ok := m.files[id]
	if !ok {
		return domain.ErrFileNotFound
	}
	file.AnalysisStatus = status
	file.AnalysisResult = result
	return nil
}
