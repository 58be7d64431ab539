// Package storage provides FileStore implementations: Postgres for
// deployments with a database and an in-memory store for everything else.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "github.com/lib/pq"

	"chatscope/internal/domain"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Save(ctx context.Context, file *domain.ChatFile) error {
	query := `
		INSERT INTO chat_files (id, filename, size, content, uploaded_at, analysis_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := p.db.ExecContext(ctx, query,
		file.ID,
		file.Filename,
		file.Size,
		file.Content,
		file.UploadedAt,
		string(file.AnalysisStatus),
	)

	return err
}

func (p *Postgres) List(ctx context.Context) ([]domain.ChatFileSummary, error) {
	query := `
		SELECT id, filename, size, uploaded_at, analysis_status
		FROM chat_files ORDER BY uploaded_at DESC
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ChatFileSummary
	for rows.Next() {
		var s domain.ChatFileSummary
		var status string
		if err := rows.Scan(
			&s.ID,
			&s.Filename,
			&s.Size,
			&s.UploadedAt,
			&status,
		); err != nil {
			return nil, err
		}
		s.AnalysisStatus = domain.AnalysisStatus(status)
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (p *Postgres) Get(ctx context.Context, id string) (*domain.ChatFile, error) {
	query := `
		SELECT id, filename, size, content, uploaded_at, analysis_status, analysis_result
		FROM chat_files WHERE id = $1
	`

	var file domain.ChatFile
	var status string
	var resultJSON []byte
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&file.ID,
		&file.Filename,
		&file.Size,
		&file.Content,
		&file.UploadedAt,
		&status,
		&resultJSON,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	file.AnalysisStatus = domain.AnalysisStatus(status)
	if len(resultJSON) > 0 {
		var result domain.AnalysisResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, err
		}
		file.AnalysisResult = &result
	}

	return &file, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM chat_files WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (p *Postgres) UpdateAnalysis(ctx context.Context, id string, status domain.AnalysisStatus, result *domain.AnalysisResult) error {
	var resultJSON []byte
	if result != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		resultJSON = data
	}

	query := `
		UPDATE chat_files SET analysis_status = $2, analysis_result = $3
		WHERE id = $1
	`

	res, err := p.db.ExecContext(ctx, query, id, string(status), resultJSON)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}
