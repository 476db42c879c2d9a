package storage

import (
	"chat-notifier/domain"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const JournalPrefix = "journal:"

// JournalRepository appends notification operations to BadgerDB.
// Keys sort chronologically: journal:{unix nano}:{id}.
type JournalRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewJournalRepository(db *badger.DB, log *slog.Logger) *JournalRepository {
	return &JournalRepository{db: db, log: log}
}

func JournalKey(entry domain.JournalEntry) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", JournalPrefix, entry.At.UnixNano(), entry.ID))
}

// Record persists one entry. Entries are never updated.
func (r *JournalRepository) Record(entry domain.JournalEntry) error {
	data, err := MarshalJournalEntry(entry)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(JournalKey(entry), data)
	})
}

// Latest returns at most limit entries, newest first.
func (r *JournalRepository) Latest(limit int) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	if limit <= 0 {
		return entries, nil
	}
	prefix := []byte(JournalPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts from the greatest key sharing the prefix
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(entries) < limit; it.Next() {
			err := it.Item().Value(func(v []byte) error {
				entry, err := UnmarshalJournalEntry(v)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during journal fetch: %w", err)
	}
	return entries, nil
}

func MarshalJournalEntry(entry domain.JournalEntry) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"id":             entry.ID.String(),
		"kind":           string(entry.Kind),
		"notificationId": entry.NotificationID,
		"chatId":         string(entry.ChatID),
		"title":          entry.Title,
		"messages":       entry.Messages,
		"at":             entry.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode journal entry: %w", err)
	}
	return proto.Marshal(s)
}

func UnmarshalJournalEntry(data []byte) (domain.JournalEntry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("failed to unmarshal journal entry: %w", err)
	}
	fields := s.GetFields()

	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("invalid journal entry id: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("invalid journal entry time: %w", err)
	}

	return domain.JournalEntry{
		ID:             id,
		Kind:           domain.JournalKind(fields["kind"].GetStringValue()),
		NotificationID: int(fields["notificationId"].GetNumberValue()),
		ChatID:         domain.ChatID(fields["chatId"].GetStringValue()),
		Title:          fields["title"].GetStringValue(),
		Messages:       int(fields["messages"].GetNumberValue()),
		At:             at,
	}, nil
}
