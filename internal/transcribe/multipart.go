package transcribe

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/textproto"
	"strings"
)

type multipartBody struct {
	reader      io.Reader
	length      int64
	contentType string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// newMultipartBody frames the upload as a single-part form without reading the
// file into memory, so the exact Content-Length is known up front.
func newMultipartBody(up Upload) (*multipartBody, error) {
	if up.Body == nil {
		return nil, fmt.Errorf("upload %q has no body", up.Name)
	}
	if up.Size < 0 {
		return nil, fmt.Errorf("upload %q has negative size", up.Name)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FormField, quoteEscaper.Replace(up.Name)))
	header.Set("Content-Type", contentType)
	if _, err := mw.CreatePart(header); err != nil {
		return nil, err
	}
	prefix := append([]byte(nil), buf.Bytes()...)

	buf.Reset()
	if err := mw.Close(); err != nil {
		return nil, err
	}
	suffix := append([]byte(nil), buf.Bytes()...)

	return &multipartBody{
		reader:      io.MultiReader(bytes.NewReader(prefix), io.LimitReader(up.Body, up.Size), bytes.NewReader(suffix)),
		length:      int64(len(prefix)) + up.Size + int64(len(suffix)),
		contentType: mw.FormDataContentType(),
	}, nil
}

// Percent returns round(sent*100/total) clamped to [0,100]
func Percent(sent, total int64) int {
	if total <= 0 {
		return 100
	}
	p := int(math.Round(float64(sent) * 100 / float64(total)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

type progressReader struct {
	r          io.Reader
	total      int64
	sent       int64
	last       int
	onProgress func(int)
}

func newProgressReader(r io.Reader, total int64, onProgress func(int)) io.Reader {
	if onProgress == nil {
		return r
	}
	return &progressReader{r: r, total: total, onProgress: onProgress}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if pct := Percent(p.sent, p.total); pct > p.last {
			p.last = pct
			p.onProgress(pct)
		}
	}
	return n, err
}
