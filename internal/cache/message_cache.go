package cache

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
)

// MessageCache keeps a bounded in-memory window of recent messages per
// conversation, reconciled from row-change events. The feed has at-least-once
// semantics, so Apply deduplicates by message id; within one conversation the
// window is kept in created_at ascending order.
type MessageCache struct {
	mu     sync.RWMutex
	byConv map[uuid.UUID][]*entity.Message
	limit  int
}

// NewMessageCache creates a cache holding up to limit messages per conversation.
func NewMessageCache(limit int) *MessageCache {
	if limit <= 0 {
		limit = 200
	}
	return &MessageCache{
		byConv: make(map[uuid.UUID][]*entity.Message),
		limit:  limit,
	}
}

// Apply merges a created or updated message into the window. A redelivered or
// edited message replaces the entry with the same id instead of duplicating it.
func (c *MessageCache) Apply(msg *entity.Message) {
	if msg == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	window := c.byConv[msg.ConversationID]
	for i, existing := range window {
		if existing.ID == msg.ID {
			window[i] = msg
			c.resort(msg.ConversationID, window)
			return
		}
	}

	window = append(window, msg)
	c.resort(msg.ConversationID, window)
}

// resort restores created_at order and trims the oldest entries. Caller holds the lock.
func (c *MessageCache) resort(conversationID uuid.UUID, window []*entity.Message) {
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].CreatedAt.Before(window[j].CreatedAt)
	})
	if len(window) > c.limit {
		window = window[len(window)-c.limit:]
	}
	c.byConv[conversationID] = window
}

// Remove drops a deleted message from the window.
func (c *MessageCache) Remove(conversationID, messageID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	window := c.byConv[conversationID]
	for i, existing := range window {
		if existing.ID == messageID {
			c.byConv[conversationID] = append(window[:i:i], window[i+1:]...)
			return
		}
	}
}

// Recent returns a copy of the cached window in created_at ascending order.
// An empty result means the cache has nothing for this conversation and the
// caller should fall back to the store.
func (c *MessageCache) Recent(conversationID uuid.UUID) []*entity.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	window := c.byConv[conversationID]
	if len(window) == 0 {
		return nil
	}
	result := make([]*entity.Message, len(window))
	copy(result, window)
	return result
}

// Drop removes the whole conversation window (e.g. when the last subscriber leaves).
func (c *MessageCache) Drop(conversationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byConv, conversationID)
}

// Len reports the current window size for a conversation.
func (c *MessageCache) Len(conversationID uuid.UUID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byConv[conversationID])
}
