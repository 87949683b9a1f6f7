package domain

import (
	"strings"
	"time"
)

type OutputFormat string

const (
	OutputDetailed   OutputFormat = "detailed"
	OutputSummarized OutputFormat = "summarized"
	OutputPoints     OutputFormat = "points"
)

// DefaultURLLabel is sent as the query when URLs are submitted without a topic.
const DefaultURLLabel = "Article from provided URLs"

// ParseOutputFormat accepts the backend's article_type values; empty means detailed.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", OutputDetailed:
		return OutputDetailed, nil
	case OutputSummarized:
		return OutputSummarized, nil
	case OutputPoints:
		return OutputPoints, nil
	}
	return "", &ValidationError{
		Code:    "InvalidFormat",
		Field:   "format",
		Message: "output format must be one of detailed, summarized, points",
	}
}

// GenerationRequest is a validated submission.
type GenerationRequest struct {
	Topic  string
	URLs   []string
	Format OutputFormat
}

// FromURLs reports whether the request goes to the from-urls endpoint.
func (r GenerationRequest) FromURLs() bool {
	return len(r.URLs) > 0
}

// Label is the query sent alongside URLs.
func (r GenerationRequest) Label() string {
	if r.Topic == "" {
		return DefaultURLLabel
	}
	return r.Topic
}

// IsValidURL reports whether s is an absolute http(s) URL by prefix.
func IsValidURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// NewGenerationRequest trims the topic, drops invalid URLs and enforces that
// something is left to generate from.
func NewGenerationRequest(topic string, urls []string, format OutputFormat) (GenerationRequest, error) {
	topic = strings.TrimSpace(topic)

	valid := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if IsValidURL(u) {
			valid = append(valid, u)
		}
	}

	if topic == "" && len(valid) == 0 {
		return GenerationRequest{}, ErrEmptyRequest
	}

	f, err := ParseOutputFormat(string(format))
	if err != nil {
		return GenerationRequest{}, err
	}

	return GenerationRequest{Topic: topic, URLs: valid, Format: f}, nil
}

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

type JobResult struct {
	Filename string `json:"filename"`
}

// Job mirrors the backend's job document. The client only reads it.
type Job struct {
	ID       string     `json:"id"`
	Status   JobStatus  `json:"status"`
	Progress int        `json:"progress"`
	Message  string     `json:"message"`
	Result   *JobResult `json:"result,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type ProgressUpdate struct {
	Progress int
	Message  string
}

// JobRecord is the local history row for a submitted job.
type JobRecord struct {
	JobID       string       `db:"job_id"`
	Topic       string       `db:"topic"`
	URLs        []string     `db:"-"`
	Format      OutputFormat `db:"format"`
	Status      JobStatus    `db:"status"`
	Filename    *string      `db:"filename"`
	Error       *string      `db:"error"`
	SubmittedAt time.Time    `db:"submitted_at"`
	FinishedAt  *time.Time   `db:"finished_at"`
}
