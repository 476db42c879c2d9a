// Package host is a terminal stand-in for the mobile platform: it shows
// notifications, launches the app and routes notification callbacks.
package host

import (
	"chat-notifier/domain"
	"fmt"
	"io"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
)

var (
	titleStyle  = color.New(color.FgCyan, color.OpBold)
	authorStyle = color.New(color.FgGreen)
	mutedStyle  = color.New(color.FgGray)

	summaryTags = strings.NewReplacer("<b>", "", "</b>", "")
)

// Surface is the notification tray. It keeps the posted notifications by id,
// renders every change to out and fires pending intents on tap and dismiss.
type Surface struct {
	mu         sync.Mutex
	out        io.Writer
	colours    bool
	broadcasts *Broadcaster
	channels   map[string]domain.Channel
	active     map[int]domain.Notification
	cancelAlls int
}

func NewSurface(out io.Writer, colours bool, broadcasts *Broadcaster) *Surface {
	return &Surface{
		out:        out,
		colours:    colours,
		broadcasts: broadcasts,
		channels:   make(map[string]domain.Channel),
		active:     make(map[int]domain.Notification),
	}
}

// CreateChannel registers a channel, creating an existing one again is a no-op.
func (s *Surface) CreateChannel(channel domain.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if channel.ID == "" {
		return fmt.Errorf("channel id is empty")
	}
	if _, ok := s.channels[channel.ID]; !ok {
		s.channels[channel.ID] = channel
	}
	return nil
}

// Notify posts or replaces the notification shown under id.
func (s *Surface) Notify(id int, notification domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 {
		return fmt.Errorf("notification id 0 is not allowed")
	}
	if _, ok := s.channels[notification.ChannelID]; !ok {
		return fmt.Errorf("no channel %q", notification.ChannelID)
	}
	s.active[id] = notification
	s.render(id, notification)
	return nil
}

// Cancel removes the notification shown under id, unknown ids are ignored.
func (s *Surface) Cancel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[id]; !ok {
		return nil
	}
	delete(s.active, id)
	s.println(mutedStyle, fmt.Sprintf("-- notification %d cleared --", id))
	return nil
}

// CancelAll clears the tray. Ongoing notifications belong to a running
// service and stay until cancelled by id.
func (s *Surface) CancelAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.DeleteFunc(s.active, func(_ int, n domain.Notification) bool {
		return !n.Ongoing
	})
	s.cancelAlls++
	s.println(mutedStyle, "-- all notifications cleared --")
	return nil
}

// Tap fires the content intent of a notification, removing it when auto-cancel is set.
func (s *Surface) Tap(id int) error {
	s.mu.Lock()
	notification, ok := s.active[id]
	if ok && notification.AutoCancel {
		delete(s.active, id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("no notification %d", id)
	}
	if notification.ContentIntent == nil {
		return nil
	}
	return s.broadcasts.Send(*notification.ContentIntent)
}

// Dismiss swipes a notification away and fires its delete intent.
func (s *Surface) Dismiss(id int) error {
	s.mu.Lock()
	notification, ok := s.active[id]
	delete(s.active, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("no notification %d", id)
	}
	if notification.DeleteIntent == nil {
		return nil
	}
	return s.broadcasts.Send(*notification.DeleteIntent)
}

// Active returns a copy of the notifications currently shown.
func (s *Surface) Active() map[int]domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.active)
}

// CancelAllCalls counts how many times the tray was cleared.
func (s *Surface) CancelAllCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelAlls
}

func (s *Surface) Channel(id string) (domain.Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	channel, ok := s.channels[id]
	return channel, ok
}

func (s *Surface) render(id int, n domain.Notification) {
	header := fmt.Sprintf("[%d] %s", id, n.Title)
	if n.Number > 0 {
		header += fmt.Sprintf(" (%d)", n.Number)
	}
	if n.When > 0 {
		header += " " + time.UnixMilli(n.When).Format("15:04:05")
	}
	s.println(titleStyle, header)
	if n.GroupSummary && n.Summary != "" {
		s.println(mutedStyle, "  "+summaryTags.Replace(n.Summary))
	}
	if n.Style == nil {
		s.println(nil, "    "+n.Text)
		return
	}
	for _, m := range n.Style.Messages {
		name := ""
		if m.Author != nil {
			name = m.Author.Name
		}
		at := time.UnixMilli(m.Timestamp).Format("15:04:05")
		line := "    " + s.styled(authorStyle, name) + ": " + m.Text + " " + s.styled(mutedStyle, at)
		_, _ = fmt.Fprintln(s.out, line)
	}
}

func (s *Surface) println(style color.Style, text string) {
	_, _ = fmt.Fprintln(s.out, s.styled(style, text))
}

func (s *Surface) styled(style color.Style, text string) string {
	if !s.colours || style == nil {
		return text
	}
	return style.Render(text)
}
