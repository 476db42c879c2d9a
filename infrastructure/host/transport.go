package host

import (
	"bufio"
	"bytes"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const maxLineSize = 1 << 20

// Poster queues new message signals, waiting for room when its queue is full.
type Poster interface {
	Enqueue(ctx context.Context, bundle event.Bundle) error
}

// Line is one JSON line read from the transport.
//
//	{"type":"message","data":{"chatId":"a","chatType":"1",...}}
//	{"type":"intent","action":"im.status.ethereum.module.TAP_STOP"}
//	{"type":"tap","id":2}
//	{"type":"dismiss","id":2}
type Line struct {
	Type   string         `json:"type"`
	Data   map[string]any `json:"data,omitempty"`
	Action string         `json:"action,omitempty"`
	Extras map[string]any `json:"extras,omitempty"`
	ID     int            `json:"id,omitempty"`
}

// Transport feeds the controller and the tray from a stream of JSON lines.
type Transport struct {
	log        *slog.Logger
	in         io.Reader
	poster     Poster
	surface    *Surface
	broadcasts *Broadcaster
}

func NewTransport(log *slog.Logger, in io.Reader, poster Poster, surface *Surface, broadcasts *Broadcaster) *Transport {
	return &Transport{log: log, in: in, poster: poster, surface: surface, broadcasts: broadcasts}
}

// Run reads until the input ends or ctx is canceled.
// A bad line is logged and skipped.
func (t *Transport) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(t.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if err := t.Handle(ctx, []byte(raw)); err != nil {
			t.log.Warn("Skipping transport line", "error", err)
		}
	}
	return scanner.Err()
}

func (t *Transport) Handle(ctx context.Context, raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var line Line
	if err := decoder.Decode(&line); err != nil {
		return fmt.Errorf("invalid line: %w", err)
	}

	switch line.Type {
	case "message":
		return t.poster.Enqueue(ctx, event.Bundle(line.Data))
	case "intent":
		return t.broadcasts.Send(domain.PendingIntent{
			Action: domain.Action(line.Action),
			Extras: line.Extras,
		})
	case "tap":
		return t.surface.Tap(line.ID)
	case "dismiss":
		return t.surface.Dismiss(line.ID)
	default:
		return fmt.Errorf("unknown line type %q", line.Type)
	}
}
