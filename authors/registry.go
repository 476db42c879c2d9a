// Package authors resolves message senders into cached identities.
package authors

import (
	"bytes"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/crypto/blake2b"
)

// Registry caches one Author per public key for the lifetime of the process.
// The first sighting wins: a later name or icon change is not picked up
// until restart.
type Registry struct {
	mu         sync.Mutex
	log        *slog.Logger
	avatarSize int
	authors    map[string]*domain.Author
}

// NewRegistry builds an empty registry. Avatars are cropped to a square of
// avatarSize pixels, 0 keeps the decoded size.
func NewRegistry(log *slog.Logger, avatarSize int) *Registry {
	return &Registry{
		log:        log,
		avatarSize: avatarSize,
		authors:    make(map[string]*domain.Author),
	}
}

// Resolve returns the cached identity of publicKey, building it from the
// identicon data URI and display name on first sighting.
func (r *Registry) Resolve(publicKey, icon, name string) (*domain.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if author, ok := r.authors[publicKey]; ok {
		return author, nil
	}

	avatar, err := DecodeIcon(icon, r.avatarSize)
	if err != nil {
		return nil, err
	}
	author := &domain.Author{Name: name, Avatar: avatar}
	r.authors[publicKey] = author
	r.log.Debug("Author registered", "author", Fingerprint(publicKey), "name", name)
	return author, nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.authors)
}

// DecodeIcon decodes the base64 payload following the first comma of a data URI.
func DecodeIcon(icon string, size int) (image.Image, error) {
	_, payload, ok := strings.Cut(icon, ",")
	if !ok {
		return nil, fmt.Errorf("%w: no comma in data URI", errors.ErrMalformedAuthorIcon)
	}
	raw, err := decodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedAuthorIcon, err)
	}

	mtype := mimetype.Detect(raw)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: payload is %s", errors.ErrMalformedAuthorIcon, mtype.String())
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedAuthorIcon, err)
	}
	if size > 0 {
		img = imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
	}
	return img, nil
}

// decodeBase64 ignores line breaks and tolerates missing padding.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, payload)
	if payload == "" {
		return nil, fmt.Errorf("empty payload")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return raw, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

// Fingerprint identifies a public key in logs without printing it.
func Fingerprint(publicKey string) string {
	sum := blake2b.Sum256([]byte(publicKey))
	return hex.EncodeToString(sum[:6])
}
