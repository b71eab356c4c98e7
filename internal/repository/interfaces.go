// internal/repository/interfaces.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
)

// JobRepository defines persistence operations for print jobs
type JobRepository interface {
	Create(ctx context.Context, job *model.PrintJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.PrintJob, error)
	List(ctx context.Context, limit, offset int) ([]*model.PrintJob, error)
	ListByStatus(ctx context.Context, status model.JobStatus) ([]*model.PrintJob, error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, taskID int64) error
	MarkCompleted(ctx context.Context, id uuid.UUID, status model.JobStatus, detail model.JSONObject, errMsg *string) error
}
