package pageroutes

import (
	"sync"

	"github.com/google/uuid"
)

// History is the navigation stack a Router drives. It follows browser
// semantics: Push drops any entries ahead of the cursor, Go moves the cursor
// without touching entries.
type History interface {
	// Push adds path after the current entry and makes it current.
	Push(path string)
	// Replace overwrites the current entry, or pushes when the stack is empty.
	Replace(path string)
	// Go moves the cursor by delta and returns the new current path.
	// It reports false and leaves the cursor alone when out of range.
	Go(delta int) (string, bool)
	// Peek returns the path delta entries away from the cursor.
	Peek(delta int) (string, bool)
	// Current returns the current path, or "" for an empty stack.
	Current() string
	Len() int
}

// Entry is one slot of the history stack. Key is unique per pushed entry,
// like the state key a browser attaches to a history entry.
type Entry struct {
	Key  string
	Path string
}

// stack holds the history state shared by MemoryHistory and SessionHistory.
// Fields are exported for gob encoding in session stores.
type stack struct {
	Entries []Entry
	Index   int
}

func newStack() stack { return stack{Index: -1} }

func (s *stack) push(path string) {
	s.Entries = append(s.Entries[:s.Index+1], Entry{Key: uuid.NewString(), Path: path})
	s.Index = len(s.Entries) - 1
}

func (s *stack) replace(path string) {
	if s.Index < 0 {
		s.push(path)
		return
	}
	s.Entries[s.Index] = Entry{Key: uuid.NewString(), Path: path}
}

func (s *stack) peek(delta int) (string, bool) {
	i := s.Index + delta
	if s.Index < 0 || i < 0 || i >= len(s.Entries) {
		return "", false
	}
	return s.Entries[i].Path, true
}

func (s *stack) goTo(delta int) (string, bool) {
	p, ok := s.peek(delta)
	if ok {
		s.Index += delta
	}
	return p, ok
}

func (s *stack) current() string {
	if s.Index < 0 {
		return ""
	}
	return s.Entries[s.Index].Path
}

// MemoryHistory is an in-process History. It is safe for concurrent use.
type MemoryHistory struct {
	mu sync.Mutex
	s  stack
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{s: newStack()}
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.s.push(path)
}

func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.s.replace(path)
}

func (h *MemoryHistory) Go(delta int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s.goTo(delta)
}

func (h *MemoryHistory) Peek(delta int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s.peek(delta)
}

func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s.current()
}

func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.s.Entries)
}

// Entries returns a copy of the stack and the cursor position.
func (h *MemoryHistory) Entries() ([]Entry, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.s.Entries))
	copy(out, h.s.Entries)
	return out, h.s.Index
}
