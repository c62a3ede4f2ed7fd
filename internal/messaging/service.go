// Package messaging backs the buyer-farmer chat screens: in-memory
// conversations with per-conversation unread counts and transcripts.
package messaging

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

// Conversation is one chat thread with a counterpart.
type Conversation struct {
	ID          string
	Counterpart string
	LastMessage string
	Unread      int
	UpdatedAt   time.Time
}

// Message is one entry in a conversation transcript. Mine marks
// messages the signed-in user sent.
type Message struct {
	ID        string
	Text      string
	Mine      bool
	CreatedAt time.Time
}

// Service owns the conversation list and transcripts.
type Service struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	transcripts   map[string][]Message

	now   func() time.Time
	newID func() string
}

// Option customizes a Service at construction time.
type Option func(*Service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New builds an empty messaging service.
func New(opts ...Option) *Service {
	s := &Service{
		conversations: map[string]*Conversation{},
		transcripts:   map[string][]Message{},
		now:           func() time.Time { return time.Now().UTC() },
		newID:         func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartConversation opens a thread with the named counterpart.
func (s *Service) StartConversation(counterpart string) (Conversation, error) {
	if counterpart == "" {
		return Conversation{}, pkgerrors.New(pkgerrors.CodeValidation, "counterpart is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conversation := &Conversation{
		ID:          s.newID(),
		Counterpart: counterpart,
		UpdatedAt:   s.now(),
	}
	s.conversations[conversation.ID] = conversation
	return *conversation, nil
}

// Send appends a message to the conversation. Messages from the
// counterpart bump the unread counter; the user's own do not.
func (s *Service) Send(conversationID, text string, mine bool) (Message, error) {
	if text == "" {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "message text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[conversationID]
	if !ok {
		return Message{}, pkgerrors.New(pkgerrors.CodeNotFound, "conversation not found")
	}

	message := Message{
		ID:        s.newID(),
		Text:      text,
		Mine:      mine,
		CreatedAt: s.now(),
	}
	s.transcripts[conversationID] = append(s.transcripts[conversationID], message)
	conversation.LastMessage = text
	conversation.UpdatedAt = message.CreatedAt
	if !mine {
		conversation.Unread++
	}
	return message, nil
}

// MarkConversationRead zeroes the unread counter. Absent ids are a
// silent no-op, matching the store's no-op class.
func (s *Service) MarkConversationRead(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conversation, ok := s.conversations[conversationID]; ok {
		conversation.Unread = 0
	}
}

// Conversations lists threads, most recently active first.
func (s *Service) Conversations() []Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	listed := make([]Conversation, 0, len(s.conversations))
	for _, conversation := range s.conversations {
		listed = append(listed, *conversation)
	}
	sort.Slice(listed, func(i, j int) bool {
		if listed[i].UpdatedAt.Equal(listed[j].UpdatedAt) {
			return listed[i].ID < listed[j].ID
		}
		return listed[i].UpdatedAt.After(listed[j].UpdatedAt)
	})
	return listed
}

// Transcript returns the conversation's messages, oldest first.
func (s *Service) Transcript(conversationID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := s.transcripts[conversationID]
	if len(transcript) == 0 {
		return nil
	}
	copied := make([]Message, len(transcript))
	copy(copied, transcript)
	return copied
}

// TotalUnread sums unread counts across conversations, for the badge.
func (s *Service) TotalUnread() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, conversation := range s.conversations {
		total += conversation.Unread
	}
	return total
}
