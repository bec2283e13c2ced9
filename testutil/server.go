package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// ReceivedUpload is what the fake service saw for one request
type ReceivedUpload struct {
	FieldName     string
	FileName      string
	ContentType   string
	Size          int64
	ContentLength int64
	RequestID     string
}

// TranscriptionServer is a fake Transcription Service backed by httptest
type TranscriptionServer struct {
	*httptest.Server

	mu      sync.Mutex
	uploads []ReceivedUpload
	status  int
	body    []byte
}

// NewTranscriptionServer starts a server that answers POST /transcribe with
// status and body. It is closed when the test ends.
func NewTranscriptionServer(t *testing.T, status int, body []byte) *TranscriptionServer {
	t.Helper()
	ts := &TranscriptionServer{status: status, body: body}

	mux := http.NewServeMux()
	mux.HandleFunc("/transcribe", ts.handleTranscribe)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	})

	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TranscriptionServer) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	got := ReceivedUpload{ContentLength: r.ContentLength, RequestID: r.Header.Get("X-Request-ID")}
	mr, err := r.MultipartReader()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		got.FieldName = part.FormName()
		got.FileName = part.FileName()
		got.ContentType = part.Header.Get("Content-Type")
		got.Size, _ = io.Copy(io.Discard, part)
	}

	ts.mu.Lock()
	ts.uploads = append(ts.uploads, got)
	status, body := ts.status, ts.body
	ts.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Uploads returns the requests received so far
func (ts *TranscriptionServer) Uploads() []ReceivedUpload {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]ReceivedUpload(nil), ts.uploads...)
}

// Respond changes the status and body of later responses
func (ts *TranscriptionServer) Respond(status int, body []byte) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.status = status
	ts.body = body
}
