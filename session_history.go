package pageroutes

import (
	"context"
	"encoding/gob"

	"github.com/alexedwards/scs/v2"
)

const sessionHistoryKey = "pageroutes.history"

func init() {
	gob.Register(stack{})
}

// SessionHistory is a History persisted in an scs session, giving every
// visitor their own stack. It is bound to one request context, which must
// have passed through SessionManager.LoadAndSave.
type SessionHistory struct {
	ctx context.Context
	sm  *scs.SessionManager
}

func NewSessionHistory(ctx context.Context, sm *scs.SessionManager) *SessionHistory {
	return &SessionHistory{ctx: ctx, sm: sm}
}

func (h *SessionHistory) load() stack {
	s, ok := h.sm.Get(h.ctx, sessionHistoryKey).(stack)
	if !ok {
		return newStack()
	}
	return s
}

func (h *SessionHistory) save(s stack) {
	h.sm.Put(h.ctx, sessionHistoryKey, s)
}

func (h *SessionHistory) Push(path string) {
	s := h.load()
	s.push(path)
	h.save(s)
}

func (h *SessionHistory) Replace(path string) {
	s := h.load()
	s.replace(path)
	h.save(s)
}

func (h *SessionHistory) Go(delta int) (string, bool) {
	s := h.load()
	p, ok := s.goTo(delta)
	if ok {
		h.save(s)
	}
	return p, ok
}

func (h *SessionHistory) Peek(delta int) (string, bool) {
	s := h.load()
	return s.peek(delta)
}

func (h *SessionHistory) Current() string {
	s := h.load()
	return s.current()
}

func (h *SessionHistory) Len() int {
	return len(h.load().Entries)
}
