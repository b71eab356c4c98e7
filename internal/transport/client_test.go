// internal/transport/client_test.go
package transport

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop()), srv
}

func TestSubmitExtractsTaskID(t *testing.T) {
	var received []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		buf.ReadFrom(r.Body)
		received = buf.Bytes()
		w.Write([]byte("ok\ntask_id: 42\n"))
	})

	payload := []byte{0x1B, 0x40, 'h', 'i', 0x0A}
	result, err := client.Submit(context.Background(), payload)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !bytes.Equal(received, payload) {
		t.Errorf("server received % x, want % x", received, payload)
	}
	if result.TaskID == nil || *result.TaskID != 42 {
		t.Errorf("TaskID = %v, want 42", result.TaskID)
	}
}

func TestSubmitWithoutTaskID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("accepted"))
	})

	result, err := client.Submit(context.Background(), []byte{0x0A})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.TaskID != nil {
		t.Errorf("TaskID = %d, want nil", *result.TaskID)
	}
	if result.RawBody != "accepted" {
		t.Errorf("RawBody = %q", result.RawBody)
	}
}

func TestSubmitNon2xxFails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Submit(context.Background(), []byte{0x0A})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d, want 503", statusErr.Code)
	}
}

func TestPollStatusParsesKeyValueLines(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("task_id"); got != "7" {
			t.Errorf("task_id query = %q, want 7", got)
		}
		w.Write([]byte("status: printed\npaper: ok\nmalformed line\n"))
	})

	result, err := client.PollStatus(context.Background(), 7)
	if err != nil {
		t.Fatalf("PollStatus: %v", err)
	}
	if result.Fields["status"] != "printed" || result.Fields["paper"] != "ok" {
		t.Errorf("Fields = %v", result.Fields)
	}
	if len(result.Fields) != 2 {
		t.Errorf("malformed line not skipped: %v", result.Fields)
	}
}

func TestPollStatusNon2xxFails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.PollStatus(context.Background(), 1)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want 404", statusErr.Code)
	}
}
