package storage

import (
	"chat-notifier/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SetupTestDB opens a Badger instance in a temporary directory
func SetupTestDB(t *testing.T, dir string) *badger.DB {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	return db
}

func entryAt(at time.Time, kind domain.JournalKind, id int) domain.JournalEntry {
	return domain.JournalEntry{
		ID:             uuid.New(),
		Kind:           kind,
		NotificationID: id,
		ChatID:         "chat-a",
		Title:          "Ada",
		Messages:       3,
		At:             at.UTC(),
	}
}

func TestJournalRepository_LatestNewestFirst(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t, t.TempDir())
	defer db.Close()
	repo := NewJournalRepository(db, slog.Default())

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	first := entryAt(base, domain.JournalNotify, 2)
	second := entryAt(base.Add(time.Second), domain.JournalNotify, 3)
	third := entryAt(base.Add(2*time.Second), domain.JournalCancelAll, 0)

	// Given entries recorded out of order
	req.NoError(repo.Record(second))
	req.NoError(repo.Record(third))
	req.NoError(repo.Record(first))

	// When reading the latest two
	entries, err := repo.Latest(2)
	req.NoError(err)

	// Then they come newest first
	req.Len(entries, 2)
	req.Equal(third, entries[0])
	req.Equal(second, entries[1])

	all, err := repo.Latest(10)
	req.NoError(err)
	req.Equal([]domain.JournalEntry{third, second, first}, all)
}

func TestJournalRepository_SurvivesReopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	entry := entryAt(time.Now(), domain.JournalNotify, 2)

	db := SetupTestDB(t, dir)
	req.NoError(NewJournalRepository(db, slog.Default()).Record(entry))
	req.NoError(db.Close())

	db = SetupTestDB(t, dir)
	defer db.Close()
	entries, err := NewJournalRepository(db, slog.Default()).Latest(5)
	req.NoError(err)
	req.Equal([]domain.JournalEntry{entry}, entries)
}

func TestJournalRepository_EmptyAndZeroLimit(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t, t.TempDir())
	defer db.Close()
	repo := NewJournalRepository(db, slog.Default())

	entries, err := repo.Latest(5)
	req.NoError(err)
	req.Empty(entries)

	req.NoError(repo.Record(entryAt(time.Now(), domain.JournalNotify, 2)))
	entries, err = repo.Latest(0)
	req.NoError(err)
	req.Empty(entries)
}

func TestJournalEntry_Decode_Invalid(t *testing.T) {
	req := require.New(t)

	_, err := UnmarshalJournalEntry([]byte("not a protobuf struct"))
	req.Error(err)

	data, err := MarshalJournalEntry(domain.JournalEntry{Kind: domain.JournalNotify})
	req.NoError(err)
	_, err = UnmarshalJournalEntry(data)
	req.NoError(err)
}
