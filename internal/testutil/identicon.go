package testutil

import (
	"bytes"
	"chat-notifier/domain/event"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// Identicon returns a PNG data URI of a w x h image.
func Identicon(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: 100, B: uint8(y * 40), A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode identicon: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// NewMessageBundle builds a complete new message signal.
func NewMessageBundle(t *testing.T, chatID, chatType, from, alias string, at int64, text string) event.Bundle {
	t.Helper()

	return event.Bundle{
		event.KeyChatID:           chatID,
		event.KeyChatType:         chatType,
		event.KeyFrom:             from,
		event.KeyIdenticon:        Identicon(t, 4, 4),
		event.KeyAlias:            alias,
		event.KeyWhisperTimestamp: at,
		event.KeyText:             text,
	}
}
