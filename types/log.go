package types

import "time"

// LogEntry is a request/response pair queued for asynchronous persistence.
type LogEntry struct {
	ID              uint
	Method          string
	URL             string
	ClientIP        string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
