package logger

import (
	"log"

	logModel "car-service-booking/models/log"
	"car-service-booking/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request logs off the request path. Handlers push
// entries into a buffered channel; a single goroutine drains it into the
// logs table.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel. Run it as a goroutine at startup.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous request logger...")

	for entry := range logger.channel {
		dbLog := logModel.Log{
			Method:          entry.Method,
			URL:             entry.URL,
			ClientIP:        entry.ClientIP,
			RequestBody:     entry.RequestBody,
			ResponseBody:    entry.ResponseBody,
			RequestHeaders:  entry.RequestHeaders,
			ResponseHeaders: entry.ResponseHeaders,
			StatusCode:      entry.StatusCode,
			CreatedAt:       entry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert request log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.channel <- entry
}
