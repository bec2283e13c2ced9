package internal

// Status is the workflow state of a Session
type Status int

const (
	StatusEmpty Status = iota
	StatusFileChosen
	StatusUploading
	StatusCompleted
	StatusFailed
)

// String returns the human-readable name of the status
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusFileChosen:
		return "file chosen"
	case StatusUploading:
		return "uploading"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session is the complete state of the transcription workflow at one point in time.
// The zero value is the empty session.
type Session struct {
	File         *VideoFile
	Transcript   string
	Segments     []Segment
	Language     string
	Status       Status
	Progress     int // 0-100, only meaningful while uploading
	ErrorMessage string
	UploadID     string
}

// Segment is a timed span of transcribed speech
type Segment struct {
	ID    int     `json:"id" yaml:"id"`
	Start float64 `json:"start" yaml:"start"` // seconds
	End   float64 `json:"end" yaml:"end"`     // seconds
	Text  string  `json:"text" yaml:"text"`
}

// Transcript is the exportable view of a completed session
type Transcript struct {
	Source   string    `json:"source,omitempty" yaml:"source,omitempty"`
	Language string    `json:"language,omitempty" yaml:"language,omitempty"`
	Text     string    `json:"text" yaml:"text"`
	Segments []Segment `json:"segments,omitempty" yaml:"segments,omitempty"`
}

func (s Session) clone() Session {
	if s.File != nil {
		f := *s.File
		s.File = &f
	}
	if s.Segments != nil {
		s.Segments = append([]Segment(nil), s.Segments...)
	}
	return s
}
