// internal/transport/client.go
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// taskIDPattern matches the task identifier the printer echoes back in its
// submit response body.
var taskIDPattern = regexp.MustCompile(`task_id: (\d+)`)

// Client submits finished command buffers to a LAN printer over HTTP and
// polls the task status endpoint. It performs no retries; a non-2xx
// response is surfaced as a StatusError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// SubmitResult is the printer's response to a buffer submission.
type SubmitResult struct {
	HTTPStatus int    `json:"http_status"`
	RawBody    string `json:"raw_body"`
	TaskID     *int64 `json:"task_id,omitempty"`
}

// StatusResult is the printer's response to a status poll: the body's
// line-oriented "key: value" pairs parsed into a map.
type StatusResult struct {
	HTTPStatus int               `json:"http_status"`
	Fields     map[string]string `json:"fields"`
}

// StatusError reports a non-2xx response from the printer.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("printer returned HTTP status %d", e.Code)
}

// NewClient creates a transport client for the printer at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(zap.String("component", "transport")),
	}
}

// Submit posts the finished command buffer verbatim as the request body.
// The buffer is treated as immutable; it is handed off exactly once.
func (c *Client) Submit(ctx context.Context, buffer []byte) (*SubmitResult, error) {
	url := c.baseURL + "/cgi-bin/print"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Submit request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to submit buffer: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read submit response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Printer rejected buffer",
			zap.Int("status", resp.StatusCode),
			zap.Int("bytes", len(buffer)),
		)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	result := &SubmitResult{
		HTTPStatus: resp.StatusCode,
		RawBody:    string(body),
	}
	if m := taskIDPattern.FindStringSubmatch(result.RawBody); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			result.TaskID = &id
		}
	}

	c.logger.Info("Buffer submitted",
		zap.Int("bytes", len(buffer)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// PollStatus fetches the status of a previously submitted task.
func (c *Client) PollStatus(ctx context.Context, taskID int64) (*StatusResult, error) {
	url := fmt.Sprintf("%s/cgi-bin/status?task_id=%d", c.baseURL, taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Status poll failed", zap.Error(err), zap.Int64("task_id", taskID))
		return nil, fmt.Errorf("failed to poll status: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return &StatusResult{
		HTTPStatus: resp.StatusCode,
		Fields:     parseKeyValueLines(string(body)),
	}, nil
}

// parseKeyValueLines splits a line-oriented "key: value" body into a map.
// Lines without a separator are skipped.
func parseKeyValueLines(body string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(body, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}
