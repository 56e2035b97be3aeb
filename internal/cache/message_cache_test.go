package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
)

func testMessage(conversationID uuid.UUID, content string, createdAt time.Time) *entity.Message {
	return &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       uuid.New(),
		Content:        content,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

func TestMessageCache_RecentReturnsAscendingOrder(t *testing.T) {
	c := NewMessageCache(10)
	convID := uuid.New()
	base := time.Now()

	// Wstawiamy poza kolejnością - okno musi samo odtworzyć porządek.
	second := testMessage(convID, "druga", base.Add(2*time.Second))
	first := testMessage(convID, "pierwsza", base.Add(1*time.Second))
	third := testMessage(convID, "trzecia", base.Add(3*time.Second))

	c.Apply(second)
	c.Apply(third)
	c.Apply(first)

	recent := c.Recent(convID)
	require.Len(t, recent, 3)
	assert.Equal(t, "pierwsza", recent[0].Content)
	assert.Equal(t, "druga", recent[1].Content)
	assert.Equal(t, "trzecia", recent[2].Content)
}

func TestMessageCache_RedeliveryDoesNotDuplicate(t *testing.T) {
	c := NewMessageCache(10)
	convID := uuid.New()
	msg := testMessage(convID, "dostarczona dwukrotnie", time.Now())

	c.Apply(msg)
	c.Apply(msg)

	assert.Equal(t, 1, c.Len(convID))
}

func TestMessageCache_EditReplacesEntry(t *testing.T) {
	c := NewMessageCache(10)
	convID := uuid.New()
	msg := testMessage(convID, "oryginał", time.Now())
	c.Apply(msg)

	edited := *msg
	edited.Content = "poprawiona"
	edited.IsEdited = true
	c.Apply(&edited)

	recent := c.Recent(convID)
	require.Len(t, recent, 1)
	assert.Equal(t, "poprawiona", recent[0].Content)
	assert.True(t, recent[0].IsEdited)
}

func TestMessageCache_TrimsOldestBeyondLimit(t *testing.T) {
	c := NewMessageCache(3)
	convID := uuid.New()
	base := time.Now()

	for i := 0; i < 5; i++ {
		c.Apply(testMessage(convID, fmt.Sprintf("wiadomość %d", i), base.Add(time.Duration(i)*time.Second)))
	}

	recent := c.Recent(convID)
	require.Len(t, recent, 3)
	assert.Equal(t, "wiadomość 2", recent[0].Content)
	assert.Equal(t, "wiadomość 4", recent[2].Content)
}

func TestMessageCache_Remove(t *testing.T) {
	c := NewMessageCache(10)
	convID := uuid.New()
	msg := testMessage(convID, "do usunięcia", time.Now())
	keep := testMessage(convID, "zostaje", time.Now().Add(time.Second))

	c.Apply(msg)
	c.Apply(keep)
	c.Remove(convID, msg.ID)

	recent := c.Recent(convID)
	require.Len(t, recent, 1)
	assert.Equal(t, keep.ID, recent[0].ID)

	// Usunięcie nieznanego id jest no-opem.
	c.Remove(convID, uuid.New())
	assert.Equal(t, 1, c.Len(convID))
}

func TestMessageCache_RecentEmptyMeansFallback(t *testing.T) {
	c := NewMessageCache(10)
	assert.Nil(t, c.Recent(uuid.New()))
}

func TestMessageCache_ConversationsAreIsolated(t *testing.T) {
	c := NewMessageCache(10)
	convA := uuid.New()
	convB := uuid.New()

	c.Apply(testMessage(convA, "w pierwszej", time.Now()))
	c.Apply(testMessage(convB, "w drugiej", time.Now()))

	assert.Equal(t, 1, c.Len(convA))
	assert.Equal(t, 1, c.Len(convB))

	c.Drop(convA)
	assert.Equal(t, 0, c.Len(convA))
	assert.Equal(t, 1, c.Len(convB))
}

func TestMessageCache_RecentReturnsCopy(t *testing.T) {
	c := NewMessageCache(10)
	convID := uuid.New()
	c.Apply(testMessage(convID, "a", time.Now()))
	c.Apply(testMessage(convID, "b", time.Now().Add(time.Second)))

	first := c.Recent(convID)
	first[0] = nil

	second := c.Recent(convID)
	require.NotNil(t, second[0])
}
