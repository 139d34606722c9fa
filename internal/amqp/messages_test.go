package amqp

import (
	"testing"
	"time"
)

func TestReportReadyMessageRoundTrip(t *testing.T) {
	msg := NewReportReadyMessage("spending_by_category", "reports/spending_by_category.json", 3)
	if msg.Timestamp.IsZero() {
		t.Fatal("NewReportReadyMessage must stamp the message")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	got, err := ReportReadyMessageFromJSON(data)
	if err != nil {
		t.Fatalf("ReportReadyMessageFromJSON() error: %v", err)
	}
	if got.Report != msg.Report {
		t.Errorf("report = %q, want %q", got.Report, msg.Report)
	}
	if got.Path != msg.Path {
		t.Errorf("path = %q, want %q", got.Path, msg.Path)
	}
	if got.Rows != msg.Rows {
		t.Errorf("rows = %d, want %d", got.Rows, msg.Rows)
	}
	if !got.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, msg.Timestamp)
	}
}

func TestReportReadyMessageFromJSONInvalid(t *testing.T) {
	if _, err := ReportReadyMessageFromJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestReportReadyMessageFieldNames(t *testing.T) {
	msg := &ReportReadyMessage{
		Report:    "spending_by_weekday",
		Path:      "reports/spending_by_weekday.json",
		Rows:      7,
		Timestamp: time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC),
	}
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}
	want := `{"report":"spending_by_weekday","path":"reports/spending_by_weekday.json","rows":7,"timestamp":"2022-01-10T12:00:00Z"}`
	if string(data) != want {
		t.Errorf("ToJSON() = %s, want %s", data, want)
	}
}
