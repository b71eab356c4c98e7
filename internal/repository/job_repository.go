// internal/repository/job_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/database"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
)

// jobRepository implements JobRepository using PostgreSQL
type jobRepository struct {
	db     *database.Connection
	logger *zap.Logger
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *database.Connection, logger *zap.Logger) JobRepository {
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new print job
func (r *jobRepository) Create(ctx context.Context, job *model.PrintJob) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}

	query := `
		INSERT INTO print_jobs (id, status, device_width, byte_count, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := r.db.DB.ExecContext(ctx, query,
		job.ID, job.Status, job.DeviceWidth, job.ByteCount, job.Payload,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create print job: %w", err)
	}

	r.logger.Debug("print job created",
		zap.String("job_id", job.ID.String()),
		zap.Int("byte_count", job.ByteCount),
	)
	return nil
}

// GetByID retrieves a print job by its ID
func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PrintJob, error) {
	query := `
		SELECT id, task_id, status, device_width, byte_count, payload,
		       status_detail, error_message, submitted_at, completed_at,
		       created_at, updated_at
		FROM print_jobs
		WHERE id = $1`

	job := &model.PrintJob{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.TaskID, &job.Status, &job.DeviceWidth, &job.ByteCount,
		&job.Payload, &job.StatusDetail, &job.ErrorMessage,
		&job.SubmittedAt, &job.CompletedAt, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("print job not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get print job: %w", err)
	}

	return job, nil
}

// List retrieves print jobs ordered by creation time
func (r *jobRepository) List(ctx context.Context, limit, offset int) ([]*model.PrintJob, error) {
	query := `
		SELECT id, task_id, status, device_width, byte_count, payload,
		       status_detail, error_message, submitted_at, completed_at,
		       created_at, updated_at
		FROM print_jobs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list print jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// ListByStatus retrieves print jobs in a given state
func (r *jobRepository) ListByStatus(ctx context.Context, status model.JobStatus) ([]*model.PrintJob, error) {
	query := `
		SELECT id, task_id, status, device_width, byte_count, payload,
		       status_detail, error_message, submitted_at, completed_at,
		       created_at, updated_at
		FROM print_jobs
		WHERE status = $1
		ORDER BY created_at ASC`

	rows, err := r.db.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list print jobs by status: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// MarkSubmitted records the printer-assigned task ID
func (r *jobRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, taskID int64) error {
	query := `
		UPDATE print_jobs
		SET status = $1, task_id = $2, submitted_at = $3, updated_at = $3
		WHERE id = $4`

	now := time.Now().UTC()
	result, err := r.db.DB.ExecContext(ctx, query, model.JobStatusSubmitted, taskID, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark job submitted: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("print job not found: %s", id)
	}
	return nil
}

// MarkCompleted records the terminal state of a job
func (r *jobRepository) MarkCompleted(ctx context.Context, id uuid.UUID, status model.JobStatus, detail model.JSONObject, errMsg *string) error {
	query := `
		UPDATE print_jobs
		SET status = $1, status_detail = $2, error_message = $3, completed_at = $4, updated_at = $4
		WHERE id = $5`

	now := time.Now().UTC()
	result, err := r.db.DB.ExecContext(ctx, query, status, detail, errMsg, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("print job not found: %s", id)
	}
	return nil
}

// scanJobs reads all rows into print jobs
func scanJobs(rows *sql.Rows) ([]*model.PrintJob, error) {
	var jobs []*model.PrintJob
	for rows.Next() {
		job := &model.PrintJob{}
		err := rows.Scan(
			&job.ID, &job.TaskID, &job.Status, &job.DeviceWidth, &job.ByteCount,
			&job.Payload, &job.StatusDetail, &job.ErrorMessage,
			&job.SubmittedAt, &job.CompletedAt, &job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan print job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return jobs, nil
}
