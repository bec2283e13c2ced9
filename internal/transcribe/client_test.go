package transcribe

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/video-transcriber/testutil"
)

func upload(name string, size int) Upload {
	return Upload{
		Name:        name,
		Size:        int64(size),
		ContentType: "video/mp4",
		Body:        bytes.NewReader(testutil.VideoBytes(size)),
		RequestID:   "req-1",
	}
}

func TestClient_Transcribe(t *testing.T) {
	srv := testutil.NewTranscriptionServer(t, http.StatusOK, testutil.SampleResponse(t, "hello world"))
	client := New(srv.URL + "/")

	var progress []int
	result, err := client.Transcribe(context.Background(), upload("clip.mp4", 256*1024), func(p int) {
		progress = append(progress, p)
	})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if result.Text != "hello world" {
		t.Errorf("Text = %q, want %q", result.Text, "hello world")
	}
	if result.Language != "en" {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(result.Segments))
	}
	if result.Segments[1].End != 3.25 {
		t.Errorf("Segments[1].End = %v, want 3.25", result.Segments[1].End)
	}

	uploads := srv.Uploads()
	if len(uploads) != 1 {
		t.Fatalf("server received %d uploads, want 1", len(uploads))
	}
	got := uploads[0]
	if got.FieldName != FormField {
		t.Errorf("field = %q, want %q", got.FieldName, FormField)
	}
	if got.FileName != "clip.mp4" {
		t.Errorf("filename = %q, want clip.mp4", got.FileName)
	}
	if got.ContentType != "video/mp4" {
		t.Errorf("content type = %q, want video/mp4", got.ContentType)
	}
	if got.Size != 256*1024 {
		t.Errorf("size = %d, want %d", got.Size, 256*1024)
	}
	if got.RequestID != "req-1" {
		t.Errorf("request id = %q, want req-1", got.RequestID)
	}
	if got.ContentLength <= 256*1024 {
		t.Errorf("content length = %d, should include the multipart envelope", got.ContentLength)
	}

	if len(progress) == 0 {
		t.Fatal("no progress reported")
	}
	if last := progress[len(progress)-1]; last != 100 {
		t.Errorf("last progress = %d, want 100", last)
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] <= progress[i-1] {
			t.Errorf("progress must strictly increase: %v", progress)
			break
		}
	}
}

func TestClient_TranscribeEmptyFile(t *testing.T) {
	srv := testutil.NewTranscriptionServer(t, http.StatusOK, []byte(`{"text":""}`))

	result, err := New(srv.URL).Transcribe(context.Background(), upload("empty.mp4", 0), nil)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if result.Text != "" {
		t.Errorf("Text = %q, want empty", result.Text)
	}
	if size := srv.Uploads()[0].Size; size != 0 {
		t.Errorf("uploaded size = %d, want 0", size)
	}
}

func TestClient_TranscribeFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantBody   string
		wantErr    error
	}{
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       "model crashed",
			wantStatus: 500,
			wantBody:   "model crashed",
		},
		{
			name:       "client error",
			status:     http.StatusRequestEntityTooLarge,
			wantStatus: 413,
		},
		{
			name:    "missing text",
			status:  http.StatusOK,
			body:    `{"segments":[]}`,
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    "<html>ok</html>",
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testutil.NewTranscriptionServer(t, tt.status, []byte(tt.body))
			result, err := New(srv.URL).Transcribe(context.Background(), upload("clip.mov", 1024), nil)
			if result != nil {
				t.Errorf("result = %+v, want nil", result)
			}
			if err == nil {
				t.Fatal("Transcribe() should fail")
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(statusErr.Error(), tt.wantBody) {
				t.Errorf("error %q should contain %q", statusErr.Error(), tt.wantBody)
			}
		})
	}
}

func TestClient_TranscribeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, WithTimeout(2*time.Second)).Transcribe(context.Background(), upload("clip.mp4", 16), nil)
	if err == nil {
		t.Fatal("Transcribe() should fail when the server is down")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("transport failure reported as %v", statusErr)
	}
}

func TestClient_TranscribeCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL).Transcribe(ctx, upload("clip.mp4", 16), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestClient_TranscribeRequiresBody(t *testing.T) {
	if _, err := New("http://localhost:1").Transcribe(context.Background(), Upload{Name: "clip.mp4"}, nil); err == nil {
		t.Error("Transcribe() should reject an upload without a body")
	}
}

func TestClient_Ping(t *testing.T) {
	srv := testutil.NewTranscriptionServer(t, http.StatusOK, nil)
	status, err := New(srv.URL).Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Ping() status = %d, want 200", status)
	}
}

func TestClient_Endpoint(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8000/", "http://localhost:8000/transcribe"},
		{"https://asr.example.com/v1", "https://asr.example.com/v1/transcribe"},
	}
	for _, tt := range tests {
		if got := New(tt.base).Endpoint(); got != tt.want {
			t.Errorf("New(%q).Endpoint() = %q, want %q", tt.base, got, tt.want)
		}
	}
}
