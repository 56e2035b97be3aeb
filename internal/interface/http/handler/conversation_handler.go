package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsoring-app/sponsoring-backend/internal/interface/http/dto"
	"github.com/sponsoring-app/sponsoring-backend/internal/interface/http/response"
	"github.com/sponsoring-app/sponsoring-backend/internal/usecase/conversation"
	"github.com/sponsoring-app/sponsoring-backend/internal/ws"
)

type ConversationHandler struct {
	getOrCreateConvUC *conversation.GetOrCreateConversationUseCase
	listMyConvsUC     *conversation.ListMyConversationsUseCase
	sendMessageUC     *conversation.SendMessageUseCase
	listMessagesUC    *conversation.ListMessagesUseCase
	listRecentUC      *conversation.ListRecentMessagesUseCase
	updateMessageUC   *conversation.UpdateMessageUseCase
	deleteMessageUC   *conversation.DeleteMessageUseCase
	hub               *ws.Hub
}

func NewConversationHandler(
	getOrCreateConvUC *conversation.GetOrCreateConversationUseCase,
	listMyConvsUC *conversation.ListMyConversationsUseCase,
	sendMessageUC *conversation.SendMessageUseCase,
	listMessagesUC *conversation.ListMessagesUseCase,
	listRecentUC *conversation.ListRecentMessagesUseCase,
	updateMessageUC *conversation.UpdateMessageUseCase,
	deleteMessageUC *conversation.DeleteMessageUseCase,
	hub *ws.Hub,
) *ConversationHandler {
	return &ConversationHandler{
		getOrCreateConvUC: getOrCreateConvUC,
		listMyConvsUC:     listMyConvsUC,
		sendMessageUC:     sendMessageUC,
		listMessagesUC:    listMessagesUC,
		listRecentUC:      listRecentUC,
		updateMessageUC:   updateMessageUC,
		deleteMessageUC:   deleteMessageUC,
		hub:               hub,
	}
}

// StartConversation obsługuje POST /conversations.
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	var req dto.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nieprawidłowe dane żądania")
		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator uczestnika")
		return
	}

	var eventID *uuid.UUID
	if req.EventID != nil && *req.EventID != "" {
		parsed, err := uuid.Parse(*req.EventID)
		if err != nil {
			response.BadRequest(c, "nieprawidłowy identyfikator wydarzenia")
			return
		}
		eventID = &parsed
	}

	conv, err := h.getOrCreateConvUC.Execute(c.Request.Context(), eventID, userID, participantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToConversationResponse(conv))
}

// ListMyConversations obsługuje GET /conversations.
func (h *ConversationHandler) ListMyConversations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	convs, err := h.listMyConvsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToConversationResponses(convs))
}

// SendMessage obsługuje POST /conversations/:conversationId/messages.
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversationId"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator rozmowy")
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nieprawidłowe dane żądania")
		return
	}

	msg, conv, err := h.sendMessageUC.Execute(c.Request.Context(), conversationID, userID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.hub != nil {
		_ = h.hub.BroadcastToUser(conv.OtherParticipant(userID), "messages.new", dto.ToMessageResponse(msg))
	}

	response.Created(c, dto.ToMessageResponse(msg))
}

// ListMessages obsługuje GET /conversations/:conversationId/messages.
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversationId"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator rozmowy")
		return
	}

	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	messages, err := h.listMessagesUC.Execute(c.Request.Context(), conversationID, userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMessageResponses(messages))
}

// ListRecentMessages obsługuje GET /conversations/:conversationId/messages/recent.
func (h *ConversationHandler) ListRecentMessages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversationId"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator rozmowy")
		return
	}

	limit := parseIntQuery(c, "limit", 50)

	messages, err := h.listRecentUC.Execute(c.Request.Context(), conversationID, userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMessageResponses(messages))
}

// UpdateMessage obsługuje PATCH /conversations/messages/:messageId.
func (h *ConversationHandler) UpdateMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator wiadomości")
		return
	}

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nieprawidłowe dane żądania")
		return
	}

	msg, err := h.updateMessageUC.Execute(c.Request.Context(), messageID, userID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMessageResponse(msg))
}

// DeleteMessage obsługuje DELETE /conversations/messages/:messageId.
func (h *ConversationHandler) DeleteMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator wiadomości")
		return
	}

	deleted, err := h.deleteMessageUC.Execute(c.Request.Context(), messageID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.hub != nil {
		_ = h.hub.BroadcastToUser(userID, "messages.deleted", gin.H{
			"message_id":      deleted.ID,
			"conversation_id": deleted.ConversationID,
		})
	}

	response.Success(c, gin.H{"message": "wiadomość została usunięta"})
}
