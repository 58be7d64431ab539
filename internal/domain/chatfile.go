package domain

import "time"

// AnalysisStatus tracks the lifecycle of a stored file's analysis.
type AnalysisStatus string

const (
	AnalysisPending    AnalysisStatus = "pending"
	AnalysisProcessing AnalysisStatus = "processing"
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisFailed     AnalysisStatus = "failed"
)

// ChatFile is an uploaded transcript and its analysis state.
type ChatFile struct {
	ID             string          `json:"id"`
	Filename       string          `json:"filename"`
	Size           int64           `json:"size"`
	Content        string          `json:"-"`
	UploadedAt     time.Time       `json:"uploadedAt"`
	AnalysisStatus AnalysisStatus  `json:"analysisStatus"`
	AnalysisResult *AnalysisResult `json:"analysisResult,omitempty"`
}

// Summary returns a listing view of the file without content or result.
func (f ChatFile) Summary() ChatFileSummary {
	return ChatFileSummary{
		ID:             f.ID,
		Filename:       f.Filename,
		Size:           f.Size,
		UploadedAt:     f.UploadedAt,
		AnalysisStatus: f.AnalysisStatus,
	}
}

// ChatFileSummary is the listing representation of a stored file.
type ChatFileSummary struct {
	ID             string         `json:"id"`
	Filename       string         `json:"filename"`
	Size           int64          `json:"size"`
	UploadedAt     time.Time      `json:"uploadedAt"`
	AnalysisStatus AnalysisStatus `json:"analysisStatus"`
}
