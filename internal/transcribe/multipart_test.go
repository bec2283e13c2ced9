package transcribe

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		sent, total int64
		want        int
	}{
		{0, 100, 0},
		{1, 200, 1},
		{1, 300, 0},
		{50, 100, 50},
		{2, 3, 67},
		{100, 100, 100},
		{150, 100, 100},
		{-1, 100, 0},
		{0, 0, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.sent, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.sent, tt.total, got, tt.want)
		}
	}
}

func TestNewMultipartBody(t *testing.T) {
	content := []byte("fake video bytes")
	body, err := newMultipartBody(Upload{
		Name: `my "clip".mp4`,
		Size: int64(len(content)),
		Body: bytes.NewReader(content),
	})
	if err != nil {
		t.Fatalf("newMultipartBody() error = %v", err)
	}

	raw, err := io.ReadAll(body.reader)
	if err != nil {
		t.Fatal(err)
	}
	if body.length != int64(len(raw)) {
		t.Errorf("declared length = %d, produced %d bytes", body.length, len(raw))
	}

	mediaType, params, err := mime.ParseMediaType(body.contentType)
	if err != nil {
		t.Fatalf("bad content type %q: %v", body.contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("media type = %q, want multipart/form-data", mediaType)
	}

	mr := multipart.NewReader(bytes.NewReader(raw), params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart() error = %v", err)
	}
	if part.FormName() != FormField {
		t.Errorf("form name = %q, want %q", part.FormName(), FormField)
	}
	if part.FileName() != `my "clip".mp4` {
		t.Errorf("filename = %q", part.FileName())
	}
	if ct := part.Header.Get("Content-Type"); ct != "application/octet-stream" {
		t.Errorf("part content type = %q, want application/octet-stream", ct)
	}

	got, err := io.ReadAll(part)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("part body = %q, want %q", got, content)
	}

	if _, err := mr.NextPart(); err != io.EOF {
		t.Errorf("expected a single part, NextPart() error = %v", err)
	}
}

func TestNewMultipartBody_TruncatesToSize(t *testing.T) {
	body, err := newMultipartBody(Upload{Name: "a.mp4", Size: 4, Body: strings.NewReader("abcdefgh")})
	if err != nil {
		t.Fatalf("newMultipartBody() error = %v", err)
	}
	raw, err := io.ReadAll(body.reader)
	if err != nil {
		t.Fatal(err)
	}
	if body.length != int64(len(raw)) {
		t.Errorf("declared length = %d, produced %d bytes", body.length, len(raw))
	}
	if !strings.Contains(string(raw), "abcd") || strings.Contains(string(raw), "abcde") {
		t.Errorf("body should carry exactly the first 4 bytes:\n%s", raw)
	}
}

func TestProgressReader(t *testing.T) {
	var got []int
	r := newProgressReader(strings.NewReader(strings.Repeat("x", 1000)), 1000, func(p int) {
		got = append(got, p)
	})

	buf := make([]byte, 7)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if len(got) == 0 {
		t.Fatal("no progress reported")
	}
	if last := got[len(got)-1]; last != 100 {
		t.Errorf("last progress = %d, want 100", last)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("progress must strictly increase: %v", got)
			break
		}
	}
}
