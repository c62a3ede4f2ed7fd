package state

import (
	"github.com/young4chick/kukuhub/pkg/enums"
)

// AddNotification stamps the draft with a fresh id, unread state and
// the current time, then prepends it to the history. Unknown types are
// normalized to info so screens always have a badge style to render.
func (s *Store) AddNotification(draft NotificationDraft) Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notificationType := draft.Type
	if !notificationType.IsValid() {
		notificationType = enums.NotificationTypeInfo
	}

	notification := Notification{
		ID:        s.newID(),
		Title:     draft.Title,
		Message:   draft.Message,
		Type:      notificationType,
		Read:      false,
		CreatedAt: s.now(),
	}
	s.notifications = append([]Notification{notification}, s.notifications...)
	s.metrics.IncNotificationsCreated(notificationType.String())
	return notification
}

// MarkNotificationRead flips the notification to read. Read is
// monotonic: re-marking is an observable no-op and nothing ever resets
// it. Absent ids are a silent no-op.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// Notifications returns a copy of the history, most recent first.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.notifications) == 0 {
		return nil
	}
	copied := make([]Notification, len(s.notifications))
	copy(copied, s.notifications)
	return copied
}

// UnreadCount reports how many notifications are still unread.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
