package sinks

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"time"

	"packrat/logging"
)

// JSON emits newline-delimited structured events.
type JSON struct {
	writer  *bufio.Writer
	encoder *json.Encoder
}

// NewJSON constructs a JSON sink writing to the provided io.Writer. Every
// event is flushed as it is written.
func NewJSON(w io.Writer) *JSON {
	if w == nil {
		w = io.Discard
	}
	buf := bufio.NewWriter(w)
	return &JSON{writer: buf, encoder: json.NewEncoder(buf)}
}

// Write satisfies logging.Sink.
func (s *JSON) Write(event logging.Event) error {
	wire := map[string]any{
		"type":     event.Type,
		"step":     event.Step,
		"time":     event.Time.Format(time.RFC3339Nano),
		"severity": event.Severity,
		"category": event.Category,
		"actor":    event.Actor,
		"payload":  event.Payload,
		"extra":    event.Extra,
	}
	if err := s.encoder.Encode(wire); err != nil {
		return err
	}
	return s.writer.Flush()
}

// Close satisfies logging.Sink.
func (s *JSON) Close(context.Context) error {
	return s.writer.Flush()
}
