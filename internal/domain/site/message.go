package site

import (
	"errors"
	"sort"
	"time"
)

type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "new"
	MessageStatusInReview MessageStatus = "in-review"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusArchived MessageStatus = "archived"
)

var ErrInvalidMessageStatus = errors.New("status must be one of new, in-review, replied, archived")

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusInReview, MessageStatusReplied, MessageStatusArchived:
		return true
	}
	return false
}

type Message struct {
	ID         string        `json:"id"`
	Sender     string        `json:"sender"`
	Email      string        `json:"email"`
	Status     MessageStatus `json:"status"`
	ReceivedAt time.Time     `json:"receivedAt"`
	Body       string        `json:"body"`
}

func (s *State) FindMessage(id string) int {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) DeleteMessage(id string) bool {
	idx := s.FindMessage(id)
	if idx < 0 {
		return false
	}
	s.Messages = append(s.Messages[:idx:idx], s.Messages[idx+1:]...)
	return true
}

// MessagesNewestFirst returns a sorted copy; the stored order is untouched.
func (s *State) MessagesNewestFirst() []Message {
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out
}
