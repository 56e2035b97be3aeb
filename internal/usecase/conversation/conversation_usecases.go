package conversation

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type GetOrCreateConversationUseCase struct {
	convRepo repository.ConversationRepository
	userRepo UserRoleFinder
}

// UserRoleFinder rozstrzyga, kto w parze rozmówców jest organizacją, a kto sponsorem.
type UserRoleFinder interface {
	FindRole(ctx context.Context, userID uuid.UUID) (string, error)
}

func NewGetOrCreateConversationUseCase(convRepo repository.ConversationRepository, userRepo UserRoleFinder) *GetOrCreateConversationUseCase {
	return &GetOrCreateConversationUseCase{convRepo: convRepo, userRepo: userRepo}
}

func (uc *GetOrCreateConversationUseCase) Execute(ctx context.Context, eventID *uuid.UUID, userID, participantID uuid.UUID) (*entity.Conversation, error) {
	role, err := uc.userRepo.FindRole(ctx, userID)
	if err != nil {
		return nil, err
	}

	organizationID, sponsorID := userID, participantID
	if role == "sponsor" {
		organizationID, sponsorID = participantID, userID
	}

	conv, err := uc.convRepo.FindByParticipants(ctx, organizationID, sponsorID)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	conv, err = entity.NewConversation(eventID, organizationID, sponsorID)
	if err != nil {
		return nil, err
	}

	if err := uc.convRepo.Create(ctx, conv); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się utworzyć rozmowy")
	}
	return conv, nil
}

type ListMyConversationsUseCase struct {
	convRepo repository.ConversationRepository
}

func NewListMyConversationsUseCase(convRepo repository.ConversationRepository) *ListMyConversationsUseCase {
	return &ListMyConversationsUseCase{convRepo: convRepo}
}

func (uc *ListMyConversationsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	return uc.convRepo.FindByUserID(ctx, userID)
}

// MessageWindow to podręczna pamięć ostatnich wiadomości rozmowy,
// synchronizowana przy każdej mutacji.
type MessageWindow interface {
	Apply(msg *entity.Message)
	Remove(conversationID, messageID uuid.UUID)
	Recent(conversationID uuid.UUID) []*entity.Message
}

type SendMessageUseCase struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	window   MessageWindow
}

func NewSendMessageUseCase(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository, window MessageWindow) *SendMessageUseCase {
	return &SendMessageUseCase{convRepo: convRepo, msgRepo: msgRepo, window: window}
}

// Execute zapisuje wiadomość i zwraca ją razem z rozmową, żeby warstwa HTTP
// mogła powiadomić drugiego uczestnika.
func (uc *SendMessageUseCase) Execute(ctx context.Context, conversationID, senderID uuid.UUID, content string) (*entity.Message, *entity.Conversation, error) {
	conv, err := uc.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	if conv == nil {
		return nil, nil, apperror.ErrConversationNotFound
	}

	if !conv.IsParticipant(senderID) {
		return nil, nil, apperror.ErrForbidden
	}

	msg, err := entity.NewMessage(conversationID, senderID, content)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.msgRepo.Create(ctx, msg); err != nil {
		return nil, nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zapisać wiadomości")
	}

	if uc.window != nil {
		uc.window.Apply(msg)
	}

	// Rozmowa wypływa na górę listy po każdej nowej wiadomości.
	_ = uc.convRepo.Touch(ctx, conversationID)

	return msg, conv, nil
}

type ListMessagesUseCase struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
}

func NewListMessagesUseCase(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{convRepo: convRepo, msgRepo: msgRepo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, conversationID, userID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	conv, err := uc.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, apperror.ErrConversationNotFound
	}

	if !conv.IsParticipant(userID) {
		return nil, apperror.ErrForbidden
	}

	return uc.msgRepo.FindByConversationID(ctx, conversationID, limit, offset)
}

// ListRecentMessagesUseCase zwraca ostatnie wiadomości rozmowy. W pierwszej
// kolejności serwuje okno z pamięci podręcznej; przy pustym oknie sięga do
// bazy i zasiewa okno wynikiem.
type ListRecentMessagesUseCase struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	window   MessageWindow
}

func NewListRecentMessagesUseCase(convRepo repository.ConversationRepository, msgRepo repository.MessageRepository, window MessageWindow) *ListRecentMessagesUseCase {
	return &ListRecentMessagesUseCase{convRepo: convRepo, msgRepo: msgRepo, window: window}
}

func (uc *ListRecentMessagesUseCase) Execute(ctx context.Context, conversationID, userID uuid.UUID, limit int) ([]*entity.Message, error) {
	conv, err := uc.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, apperror.ErrConversationNotFound
	}

	if !conv.IsParticipant(userID) {
		return nil, apperror.ErrForbidden
	}

	if uc.window != nil {
		if cached := uc.window.Recent(conversationID); cached != nil {
			if limit > 0 && len(cached) > limit {
				cached = cached[len(cached)-limit:]
			}
			return cached, nil
		}
	}

	messages, err := uc.msgRepo.FindRecentByConversationID(ctx, conversationID, limit)
	if err != nil {
		return nil, err
	}

	if uc.window != nil {
		for _, msg := range messages {
			uc.window.Apply(msg)
		}
	}

	return messages, nil
}

type UpdateMessageUseCase struct {
	msgRepo repository.MessageRepository
	window  MessageWindow
}

func NewUpdateMessageUseCase(msgRepo repository.MessageRepository, window MessageWindow) *UpdateMessageUseCase {
	return &UpdateMessageUseCase{msgRepo: msgRepo, window: window}
}

func (uc *UpdateMessageUseCase) Execute(ctx context.Context, messageID, userID uuid.UUID, content string) (*entity.Message, error) {
	msg, err := uc.msgRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperror.New(apperror.ErrCodeNotFound, "wiadomość nie została znaleziona")
	}

	if !msg.IsOwnedBy(userID) {
		return nil, apperror.ErrForbidden
	}

	if err := msg.Update(content); err != nil {
		return nil, err
	}

	if err := uc.msgRepo.Update(ctx, msg); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zaktualizować wiadomości")
	}

	if uc.window != nil {
		uc.window.Apply(msg)
	}
	return msg, nil
}

type DeleteMessageUseCase struct {
	msgRepo repository.MessageRepository
	window  MessageWindow
}

func NewDeleteMessageUseCase(msgRepo repository.MessageRepository, window MessageWindow) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{msgRepo: msgRepo, window: window}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, messageID, userID uuid.UUID) (*entity.Message, error) {
	msg, err := uc.msgRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperror.New(apperror.ErrCodeNotFound, "wiadomość nie została znaleziona")
	}

	if !msg.IsOwnedBy(userID) {
		return nil, apperror.ErrForbidden
	}

	if err := uc.msgRepo.Delete(ctx, messageID); err != nil {
		return nil, err
	}

	if uc.window != nil {
		uc.window.Remove(msg.ConversationID, messageID)
	}

	return msg, nil
}
