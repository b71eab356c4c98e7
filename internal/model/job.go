// internal/model/job.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a print job
type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusSubmitted JobStatus = "SUBMITTED"
	JobStatusPrinted   JobStatus = "PRINTED"
	JobStatusFailed    JobStatus = "FAILED"
)

// JSONObject is a helper type for JSONB columns
type JSONObject map[string]interface{}

// Value implements driver.Valuer for JSONObject
func (j JSONObject) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner for JSONObject
func (j *JSONObject) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into JSONObject", value)
	}

	return json.Unmarshal(bytes, j)
}

// PrintJob represents a submitted command buffer and its delivery state
type PrintJob struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TaskID       *int64     `json:"task_id,omitempty" db:"task_id"`
	Status       JobStatus  `json:"status" db:"status"`
	DeviceWidth  int        `json:"device_width" db:"device_width"`
	ByteCount    int        `json:"byte_count" db:"byte_count"`
	Payload      JSONObject `json:"payload,omitempty" db:"payload"`
	StatusDetail JSONObject `json:"status_detail,omitempty" db:"status_detail"`
	ErrorMessage *string    `json:"error_message,omitempty" db:"error_message"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty" db:"submitted_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsTerminal reports whether the job has reached a final state
func (j *PrintJob) IsTerminal() bool {
	return j.Status == JobStatusPrinted || j.Status == JobStatusFailed
}

// Validate checks the job for basic consistency
func (j *PrintJob) Validate() error {
	if j.ID == uuid.Nil {
		return fmt.Errorf("job ID is required")
	}
	if j.DeviceWidth != 384 && j.DeviceWidth != 576 {
		return fmt.Errorf("device width must be 384 or 576, got %d", j.DeviceWidth)
	}
	if j.ByteCount < 0 {
		return fmt.Errorf("byte count cannot be negative")
	}
	switch j.Status {
	case JobStatusPending, JobStatusSubmitted, JobStatusPrinted, JobStatusFailed:
	default:
		return fmt.Errorf("invalid job status: %s", j.Status)
	}
	return nil
}
