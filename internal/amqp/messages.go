package amqp

import (
	"encoding/json"
	"time"
)

// ReportReadyMessage announces that a report file was written. Consumers
// fetch the file themselves; the message carries only location and shape.
type ReportReadyMessage struct {
	Report    string    `json:"report"`
	Path      string    `json:"path"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReportReadyMessage creates a notification for one written report.
func NewReportReadyMessage(report, path string, rows int) *ReportReadyMessage {
	return &ReportReadyMessage{
		Report:    report,
		Path:      path,
		Rows:      rows,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportReadyMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportReadyMessageFromJSON creates a message from JSON bytes
func ReportReadyMessageFromJSON(data []byte) (*ReportReadyMessage, error) {
	var msg ReportReadyMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
