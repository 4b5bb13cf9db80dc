package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// eventRepo implements EventRepo with raw SQL.
type eventRepo struct {
	db *sql.DB
}

const llmEventColumns = `id, created_at, session_id, provider, model, purpose,
	input_tokens, output_tokens, latency_ms, success, reached, status_code,
	error_message, request_body, response_body`

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_request_events (
			created_at, session_id, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, reached, status_code,
			error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(timeLayout),
		data.SessionID,
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.Reached,
		data.StatusCode,
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "id > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "id < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UTC().Format(timeLayout))
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UTC().Format(timeLayout))
	}
	if opts.Purpose != "" {
		where = append(where, "purpose = ?")
		args = append(args, opts.Purpose)
	}

	q := "SELECT " + llmEventColumns + " FROM llm_request_events"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var records []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEventRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+llmEventColumns+" FROM llm_request_events WHERE id = ?", id)
	rec, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       SUM(CASE WHEN success THEN 0 ELSE 1 END),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY COUNT(*) DESC, purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var stats []LLMUsageStat
	for rows.Next() {
		var st LLMUsageStat
		if err := rows.Scan(&st.Purpose, &st.Calls, &st.Failures,
			&st.InputTokens, &st.OutputTokens, &st.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage by purpose: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model,
		       COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		GROUP BY model
		ORDER BY COUNT(*) DESC, model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var usage []LLMModelUsage
	for rows.Next() {
		var mu LLMModelUsage
		if err := rows.Scan(&mu.Model, &mu.Calls, &mu.InputTokens, &mu.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage by model: %w", err)
		}
		usage = append(usage, mu)
	}
	return usage, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMEventRecord, error) {
	var (
		rec     LLMEventRecord
		created string
	)
	err := row.Scan(
		&rec.ID,
		&created,
		&rec.SessionID,
		&rec.Provider,
		&rec.Model,
		&rec.Purpose,
		&rec.InputTokens,
		&rec.OutputTokens,
		&rec.LatencyMs,
		&rec.Success,
		&rec.Reached,
		&rec.StatusCode,
		&rec.ErrorMessage,
		&rec.RequestBody,
		&rec.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	ts, err := time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("parse event timestamp %q: %w", created, err)
	}
	rec.Timestamp = ts
	return &rec, nil
}
