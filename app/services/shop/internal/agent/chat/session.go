package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"StrideAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/x/errors"
)

const defaultReplyTimeout = 30 * time.Second

var (
	ErrAwaitingReply = errors.New(errno.SessionBusy, "still waiting for the previous reply")
	ErrEmptyMessage  = errors.New(errno.EmptyMessage, "message is empty")
)

type State int32

const (
	StateIdle State = iota
	StateAwaitingReply
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingReply:
		return "awaiting_reply"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

type Option func(*Session)

// WithGreeting seeds the history (and every reset) with an assistant message.
func WithGreeting(greeting Message) Option {
	return func(s *Session) {
		g := cloneMessage(greeting)
		g.Role = RoleAssistant
		s.greeting = &g
	}
}

func WithReplyTimeout(timeout time.Duration) Option {
	return func(s *Session) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// Session is one shopper's conversation. At most one reply is in flight at a time.
type Session struct {
	id          string
	recommender *Recommender
	greeting    *Message
	timeout     time.Duration
	flight      syncx.Limit

	mu      sync.RWMutex
	history []Message
	state   State
}

func NewSession(id string, recommender *Recommender, opts ...Option) *Session {
	s := &Session{
		id:          id,
		recommender: recommender,
		timeout:     defaultReplyTimeout,
		flight:      syncx.NewLimit(1),
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !recommender.Available() {
		s.state = StateDisabled
	}
	s.history = s.initialHistory()
	return s
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns a copy of the history and whether a reply is pending.
func (s *Session) Snapshot() ([]Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyHistory(), s.state == StateAwaitingReply
}

// Submit appends the user message before returning. The returned channel yields exactly one
// assistant message, sent after that message is already part of the history.
func (s *Session) Submit(ctx context.Context, text string) (<-chan Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	done := make(chan Message, 1)
	if !s.recommender.Available() {
		reply := offlineMessage()
		s.mu.Lock()
		s.history = append(s.history, userMessage(text), reply)
		s.mu.Unlock()
		done <- cloneMessage(reply)
		close(done)
		return done, nil
	}

	if !s.flight.TryBorrow() {
		return nil, ErrAwaitingReply
	}

	s.mu.Lock()
	s.history = append(s.history, userMessage(text))
	s.state = StateAwaitingReply
	transcript := s.copyHistory()
	s.mu.Unlock()

	// the reply outlives the submitting request
	parent := context.WithoutCancel(ctx)
	threading.GoSafe(func() {
		reply := apologyMessage()
		defer func() {
			s.complete(reply)
			done <- cloneMessage(reply)
			close(done)
		}()

		callCtx, cancel := context.WithTimeout(parent, s.timeout)
		defer cancel()
		reply = s.recommender.Respond(callCtx, transcript)
	})
	return done, nil
}

// Reset restores the initial history. It is refused while a reply is pending.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAwaitingReply {
		return ErrAwaitingReply
	}
	s.history = s.initialHistory()
	return nil
}

func (s *Session) complete(reply Message) {
	s.mu.Lock()
	s.history = append(s.history, reply)
	// the slot is free before anyone can observe the idle state
	_ = s.flight.Return()
	s.state = StateIdle
	s.mu.Unlock()
}

func (s *Session) initialHistory() []Message {
	if s.greeting == nil {
		return []Message{}
	}
	return []Message{cloneMessage(*s.greeting)}
}

func (s *Session) copyHistory() []Message {
	out := make([]Message, 0, len(s.history))
	for _, m := range s.history {
		out = append(out, cloneMessage(m))
	}
	return out
}
