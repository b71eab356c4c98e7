// internal/service/print_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/config"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/protocol"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/repository"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/transport"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/utils"
)

// JobEventSink receives job lifecycle notifications
type JobEventSink interface {
	PublishJobEvent(jobID string, status string, data map[string]interface{})
}

// PrintService renders documents and delivers them to the printer
type PrintService struct {
	repo    repository.JobRepository
	client  *transport.Client
	channel protocol.Channel
	config  *config.PrinterConfig
	logger  *utils.ServiceLogger
	events  JobEventSink
}

// NewPrintService creates a new print service. client is used for the
// lan channel; channel covers tcp, serial and usb delivery. Exactly one
// of them is non-nil.
func NewPrintService(
	repo repository.JobRepository,
	client *transport.Client,
	channel protocol.Channel,
	cfg *config.PrinterConfig,
	logger *zap.Logger,
) *PrintService {
	return &PrintService{
		repo:    repo,
		client:  client,
		channel: channel,
		config:  cfg,
		logger:  utils.NewServiceLogger(logger, "print-service"),
	}
}

// SetEventSink attaches a job event sink
func (s *PrintService) SetEventSink(sink JobEventSink) {
	s.events = sink
}

// Print renders a document and delivers it to the printer
func (s *PrintService) Print(ctx context.Context, req *model.PrintRequest) (*model.PrintJob, error) {
	order, err := RenderDocument(req, s.config.DeviceWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	job := &model.PrintJob{
		ID:          uuid.New(),
		Status:      model.JobStatusPending,
		DeviceWidth: order.DeviceWidth(),
		ByteCount:   order.Len(),
		Payload: model.JSONObject{
			"elements": len(req.Elements),
			"cut":      req.Cut,
		},
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to persist print job: %w", err)
	}

	if err := s.deliver(ctx, job, order.Bytes()); err != nil {
		msg := err.Error()
		if markErr := s.repo.MarkCompleted(ctx, job.ID, model.JobStatusFailed, nil, &msg); markErr != nil {
			s.logger.Error("failed to mark job failed",
				zap.String("job_id", job.ID.String()),
				zap.Error(markErr),
			)
		}
		job.Status = model.JobStatusFailed
		job.ErrorMessage = &msg
		s.publish(job.ID, model.JobStatusFailed, map[string]interface{}{"error": msg})
		return job, fmt.Errorf("failed to deliver print job: %w", err)
	}

	return job, nil
}

// PrintReceipt renders a structured receipt and delivers it
func (s *PrintService) PrintReceipt(ctx context.Context, req *model.ReceiptRequest) (*model.PrintJob, error) {
	doc, err := buildReceiptDocument(req, s.config.DeviceWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build receipt: %w", err)
	}
	return s.Print(ctx, doc)
}

// GetJob retrieves a print job by ID
func (s *PrintService) GetJob(ctx context.Context, id uuid.UUID) (*model.PrintJob, error) {
	return s.repo.GetByID(ctx, id)
}

// ListJobs retrieves print jobs ordered by creation time
func (s *PrintService) ListJobs(ctx context.Context, limit, offset int) ([]*model.PrintJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// PingPrinter checks printer reachability over the configured channel
func (s *PrintService) PingPrinter(ctx context.Context) error {
	if s.client != nil {
		// The lan interface has no dedicated ping; an empty status poll
		// exercises the HTTP path.
		_, err := s.client.PollStatus(ctx, 0)
		if err != nil {
			if _, ok := err.(*transport.StatusError); ok {
				// The printer answered, which is all a ping needs.
				return nil
			}
			return err
		}
		return nil
	}

	if !s.channel.IsOpen() {
		if err := s.channel.Open(ctx); err != nil {
			return err
		}
	}
	return s.channel.Ping(ctx)
}

// deliver hands the rendered buffer to the configured channel
func (s *PrintService) deliver(ctx context.Context, job *model.PrintJob, buffer []byte) error {
	log := s.logger.JobLogger(job.ID.String())

	if s.client != nil {
		result, err := s.client.Submit(ctx, buffer)
		if err != nil {
			return err
		}
		if result.TaskID == nil {
			return fmt.Errorf("printer accepted the buffer but returned no task ID")
		}

		if err := s.repo.MarkSubmitted(ctx, job.ID, *result.TaskID); err != nil {
			return err
		}
		job.Status = model.JobStatusSubmitted
		job.TaskID = result.TaskID

		log.Info("print job submitted",
			zap.Int64("task_id", *result.TaskID),
			zap.Int("byte_count", job.ByteCount),
		)
		s.publish(job.ID, model.JobStatusSubmitted, map[string]interface{}{
			"task_id": *result.TaskID,
		})
		return nil
	}

	if !s.channel.IsOpen() {
		if err := s.channel.Open(ctx); err != nil {
			return err
		}
	}
	if err := s.channel.Write(ctx, buffer); err != nil {
		return err
	}

	// Raw channels have no acknowledgement, so a completed write is the
	// terminal state.
	if err := s.repo.MarkCompleted(ctx, job.ID, model.JobStatusPrinted, nil, nil); err != nil {
		return err
	}
	job.Status = model.JobStatusPrinted

	log.Info("print job written to channel",
		zap.String("channel", string(s.channel.Type())),
		zap.Int("byte_count", job.ByteCount),
	)
	s.publish(job.ID, model.JobStatusPrinted, nil)
	return nil
}

// StartStatusPoller polls submitted jobs until the context is canceled.
// Only the lan channel reports task status.
func (s *PrintService) StartStatusPoller(ctx context.Context) {
	if s.client == nil {
		return
	}

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	s.logger.Info("status poller started",
		zap.Duration("interval", s.config.PollInterval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("status poller stopped")
			return
		case <-ticker.C:
			s.pollSubmittedJobs(ctx)
		}
	}
}

func (s *PrintService) pollSubmittedJobs(ctx context.Context) {
	jobs, err := s.repo.ListByStatus(ctx, model.JobStatusSubmitted)
	if err != nil {
		s.logger.Error("failed to list submitted jobs", zap.Error(err))
		return
	}

	for _, job := range jobs {
		if job.TaskID == nil {
			continue
		}
		s.pollJob(ctx, job)
	}
}

func (s *PrintService) pollJob(ctx context.Context, job *model.PrintJob) {
	log := s.logger.JobLogger(job.ID.String())

	result, err := s.client.PollStatus(ctx, *job.TaskID)
	if err != nil {
		log.Warn("status poll failed", zap.Error(err))
		s.failIfExpired(ctx, job, err.Error())
		return
	}

	detail := make(model.JSONObject, len(result.Fields))
	for k, v := range result.Fields {
		detail[k] = v
	}

	switch interpretStatus(result.Fields) {
	case model.JobStatusPrinted:
		if err := s.repo.MarkCompleted(ctx, job.ID, model.JobStatusPrinted, detail, nil); err != nil {
			log.Error("failed to mark job printed", zap.Error(err))
			return
		}
		log.Info("print job completed", zap.Int64("task_id", *job.TaskID))
		s.publish(job.ID, model.JobStatusPrinted, detail)

	case model.JobStatusFailed:
		msg := "printer reported an error"
		if v, ok := result.Fields["error"]; ok {
			msg = v
		}
		if err := s.repo.MarkCompleted(ctx, job.ID, model.JobStatusFailed, detail, &msg); err != nil {
			log.Error("failed to mark job failed", zap.Error(err))
			return
		}
		log.Warn("print job failed", zap.String("reason", msg))
		s.publish(job.ID, model.JobStatusFailed, detail)

	default:
		s.failIfExpired(ctx, job, "status polling timed out")
	}
}

// failIfExpired fails a job whose submission is older than the poll
// timeout.
func (s *PrintService) failIfExpired(ctx context.Context, job *model.PrintJob, reason string) {
	if job.SubmittedAt == nil || time.Since(*job.SubmittedAt) < s.config.PollTimeout {
		return
	}

	if err := s.repo.MarkCompleted(ctx, job.ID, model.JobStatusFailed, nil, &reason); err != nil {
		s.logger.Error("failed to expire job",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
		return
	}
	s.logger.Warn("print job expired",
		zap.String("job_id", job.ID.String()),
		zap.String("reason", reason),
	)
	s.publish(job.ID, model.JobStatusFailed, map[string]interface{}{"error": reason})
}

// interpretStatus maps printer status fields to a job state. The status
// endpoint reports "status: done" when the task printed, "status: error"
// on a fault and anything else while the task is still queued.
func interpretStatus(fields map[string]string) model.JobStatus {
	switch fields["status"] {
	case "done", "printed", "completed", "ok":
		return model.JobStatusPrinted
	case "error", "failed":
		return model.JobStatusFailed
	default:
		return model.JobStatusSubmitted
	}
}

func (s *PrintService) publish(jobID uuid.UUID, status model.JobStatus, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	s.events.PublishJobEvent(jobID.String(), string(status), data)
}
