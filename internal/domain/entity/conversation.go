package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

// Conversation to rozmowa między sponsorem a organizacją. Powiązanie z
// wydarzeniem jest opcjonalne - rozmowa żyje niezależnie od współprac.
type Conversation struct {
	ID             uuid.UUID
	EventID        *uuid.UUID
	OrganizationID uuid.UUID
	SponsorID      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewConversation(eventID *uuid.UUID, organizationID, sponsorID uuid.UUID) (*Conversation, error) {
	if organizationID == sponsorID {
		return nil, apperror.New(apperror.ErrCodeValidation, "nie można rozpocząć rozmowy z samym sobą")
	}
	return &Conversation{
		ID:             uuid.New(),
		EventID:        eventID,
		OrganizationID: organizationID,
		SponsorID:      sponsorID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return c.OrganizationID == userID || c.SponsorID == userID
}

// OtherParticipant zwraca drugą stronę rozmowy.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.OrganizationID == userID {
		return c.SponsorID
	}
	return c.OrganizationID
}

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string
	IsEdited       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewMessage(conversationID, senderID uuid.UUID, content string) (*Message, error) {
	if content == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "wiadomość nie może być pusta")
	}
	return &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		IsEdited:       false,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

func (m *Message) Update(content string) error {
	if content == "" {
		return apperror.New(apperror.ErrCodeValidation, "wiadomość nie może być pusta")
	}
	m.Content = content
	m.IsEdited = true
	m.UpdatedAt = time.Now()
	return nil
}

func (m *Message) IsOwnedBy(userID uuid.UUID) bool {
	return m.SenderID == userID
}
