package chatsync

import (
	"time"

	"github.com/devfolio/chat-service/internal/model"
)

// Store is an ordered list of messages with at most one entry per id.
// It is not safe for concurrent use.
type Store struct {
	items []model.Message
	index map[string]int
}

func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Replace drops the current content. Later duplicates in msgs are ignored.
func (s *Store) Replace(msgs []model.Message) {
	s.items = make([]model.Message, 0, len(msgs))
	s.index = make(map[string]int, len(msgs))
	for _, msg := range msgs {
		s.Append(msg)
	}
}

func (s *Store) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store) Get(id string) (model.Message, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Message{}, false
	}
	return s.items[i], true
}

// Append adds msg at the end unless its id is already present.
func (s *Store) Append(msg model.Message) bool {
	if s.Contains(msg.ID) {
		return false
	}
	s.index[msg.ID] = len(s.items)
	s.items = append(s.items, msg)
	return true
}

// Update runs fn on the entry with the given id in place.
func (s *Store) Update(id string, fn func(msg *model.Message)) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	fn(&s.items[i])
	s.items[i].ID = id
	return true
}

// Confirm swaps a pending entry's id and timestamp for the server-assigned ones, keeping
// its position. If id is already present the pending entry is dropped instead.
func (s *Store) Confirm(tempID, id string, createdAt time.Time) bool {
	i, ok := s.index[tempID]
	if !ok {
		return false
	}
	if s.Contains(id) {
		s.Remove(tempID)
		return true
	}

	delete(s.index, tempID)
	s.items[i].ID = id
	if !createdAt.IsZero() {
		s.items[i].CreatedAt = createdAt
	}
	s.items[i].Pending = false
	s.index[id] = i
	return true
}

func (s *Store) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return true
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) Snapshot() []model.Message {
	out := make([]model.Message, len(s.items))
	copy(out, s.items)
	return out
}
