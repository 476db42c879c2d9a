package internal

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Kind           string
	Timestamp      string
	EntityID       string
	NotificationID string
	ChatID         string
	Detail         string
}

type RowMapper func(entry domain.JournalEntry) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Limit int
	Items []InspectRow
	Stats map[string]any
	Error string
}

// InspectHandler renders the latest journal entries with live stats.
// The limit query parameter overrides the default row count.
func InspectHandler(journal contract.IJournal, limit int, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := PageData{Limit: limit, Stats: make(map[string]any)}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				data.Limit = n
			}
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		entries, err := journal.Latest(data.Limit)
		if err != nil {
			data.Error = err.Error()
		}
		for _, entry := range entries {
			data.Items = append(data.Items, mapper(entry))
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

// StartDebugServer serves the inspector on port until ctx is done.
func StartDebugServer(ctx context.Context, log *slog.Logger, port int, endpoint string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Starting journal inspector", "address", server.Addr, "endpoint", endpoint)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Journal inspector stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}

func DefaultMapper(entry domain.JournalEntry) InspectRow {
	row := InspectRow{
		Kind:           string(entry.Kind),
		Timestamp:      entry.At.Local().Format("15:04:05.000"),
		EntityID:       entry.ID.String(),
		NotificationID: "-",
		ChatID:         "-",
		Detail:         "-",
	}
	if len(row.EntityID) > 8 {
		row.EntityID = row.EntityID[:8]
	}
	switch entry.Kind {
	case domain.JournalNotify:
		row.NotificationID = strconv.Itoa(entry.NotificationID)
		row.ChatID = string(entry.ChatID)
		row.Detail = fmt.Sprintf("%s (%d)", entry.Title, entry.Messages)
	case domain.JournalCancel:
		row.NotificationID = strconv.Itoa(entry.NotificationID)
	}
	return row
}
