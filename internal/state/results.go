package state

import (
	"database/sql"
	"fmt"
	"time"

	"quorum/pkg/models"
)

// StoredResult is the persisted summary of a collaboration run.
type StoredResult struct {
	ID            string
	Description   string
	TechStack     string
	RepoName      string
	Architecture  string
	Code          string
	QualityScore  float64
	ProvidersUsed int
	AvgConfidence float64
	TotalTokens   int
	ExecutionTime time.Duration
	CreatedAt     time.Time
}

// SaveResult persists a completed collaboration run.
func (db *DB) SaveResult(result *models.CollaborationResult) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(`
		INSERT INTO results (
			id, description, tech_stack, repo_name, architecture, code,
			quality_score, providers_used, avg_confidence, total_tokens,
			execution_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.Description,
		result.TechStack,
		result.RepoName,
		result.Architecture,
		result.Code,
		result.QualityScore,
		result.Summary.ProvidersUsed,
		result.Summary.AverageConfidence,
		result.Summary.TotalTokens,
		result.Summary.TotalExecutionTime.Milliseconds(),
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save result %s: %w", result.ID, err)
	}

	return nil
}

// GetResult loads a stored run by ID.
func (db *DB) GetResult(id string) (*StoredResult, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, description, tech_stack, repo_name, architecture, code,
			quality_score, providers_used, avg_confidence, total_tokens,
			execution_ms, created_at
		FROM results WHERE id = ?`, id)

	result, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("result %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", id, err)
	}

	return result, nil
}

// ListResults returns stored runs, newest first, up to limit.
// A non-positive limit returns all runs.
func (db *DB) ListResults(limit int) ([]*StoredResult, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	query := `
		SELECT id, description, tech_stack, repo_name, architecture, code,
			quality_score, providers_used, avg_confidence, total_tokens,
			execution_ms, created_at
		FROM results ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []*StoredResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (*StoredResult, error) {
	var result StoredResult
	var executionMS int64

	err := s.Scan(
		&result.ID,
		&result.Description,
		&result.TechStack,
		&result.RepoName,
		&result.Architecture,
		&result.Code,
		&result.QualityScore,
		&result.ProvidersUsed,
		&result.AvgConfidence,
		&result.TotalTokens,
		&executionMS,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.ExecutionTime = time.Duration(executionMS) * time.Millisecond
	return &result, nil
}
