package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/interface/http/dto"
	"github.com/sponsoring-app/sponsoring-backend/internal/interface/http/response"
	"github.com/sponsoring-app/sponsoring-backend/internal/usecase/collaboration"
	"github.com/sponsoring-app/sponsoring-backend/internal/ws"
)

type CollaborationHandler struct {
	createUC       *collaboration.CreateCollaborationUseCase
	changeStatusUC *collaboration.ChangeStatusUseCase
	updateTermsUC  *collaboration.UpdateTermsUseCase
	getUC          *collaboration.GetCollaborationUseCase
	listMyUC       *collaboration.ListMyCollaborationsUseCase
	hub            *ws.Hub
}

func NewCollaborationHandler(
	createUC *collaboration.CreateCollaborationUseCase,
	changeStatusUC *collaboration.ChangeStatusUseCase,
	updateTermsUC *collaboration.UpdateTermsUseCase,
	getUC *collaboration.GetCollaborationUseCase,
	listMyUC *collaboration.ListMyCollaborationsUseCase,
	hub *ws.Hub,
) *CollaborationHandler {
	return &CollaborationHandler{
		createUC:       createUC,
		changeStatusUC: changeStatusUC,
		updateTermsUC:  updateTermsUC,
		getUC:          getUC,
		listMyUC:       listMyUC,
		hub:            hub,
	}
}

// CreateCollaboration obsługuje POST /events/:id/collaborations.
func (h *CollaborationHandler) CreateCollaboration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator wydarzenia")
		return
	}

	var req dto.CreateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nieprawidłowe dane żądania")
		return
	}

	optionIDs, err := req.ParseOptionIDs()
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator opcji sponsoringu")
		return
	}

	customOptions := make([]collaboration.CustomOptionInput, 0, len(req.CustomOptions))
	for _, custom := range req.CustomOptions {
		customOptions = append(customOptions, collaboration.CustomOptionInput{
			Title:       custom.Title,
			Description: custom.Description,
			Price:       custom.Price,
			PriceTo:     custom.PriceTo,
			Benefits:    custom.Benefits,
		})
	}

	created, err := h.createUC.Execute(c.Request.Context(), collaboration.CreateCollaborationInput{
		EventID:           eventID,
		SponsorID:         userID,
		Message:           req.Message,
		SelectedOptionIDs: optionIDs,
		CustomOptions:     customOptions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.hub != nil {
		_ = h.hub.BroadcastToUser(created.OrganizationID, "collaborations.new", dto.ToCollaborationResponse(created, created.OrganizationID))
	}

	response.Created(c, dto.ToCollaborationResponse(created, userID))
}

// ChangeStatus obsługuje PATCH /collaborations/:id/status.
func (h *CollaborationHandler) ChangeStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	collaborationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator współpracy")
		return
	}

	var req dto.ChangeCollaborationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nieprawidłowe dane żądania")
		return
	}

	updated, err := h.changeStatusUC.Execute(c.Request.Context(), collaborationID, userID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifyOtherParty(updated.OrganizationID, updated.SponsorID, userID, "collaborations.updated", updated)

	response.Success(c, dto.ToCollaborationResponse(updated, userID))
}

// UpdateTerms obsługuje PATCH /collaborations/:id.
func (h *CollaborationHandler) UpdateTerms(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	collaborationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator współpracy")
		return
	}

	var req dto.UpdateCollaborationTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nieprawidłowe dane żądania")
		return
	}

	updated, err := h.updateTermsUC.Execute(c.Request.Context(), collaborationID, userID, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifyOtherParty(updated.OrganizationID, updated.SponsorID, userID, "collaborations.updated", updated)

	response.Success(c, dto.ToCollaborationResponse(updated, userID))
}

// GetCollaboration obsługuje GET /collaborations/:id.
func (h *CollaborationHandler) GetCollaboration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	collaborationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "nieprawidłowy identyfikator współpracy")
		return
	}

	collab, err := h.getUC.Execute(c.Request.Context(), collaborationID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCollaborationResponse(collab, userID))
}

// ListMyCollaborations obsługuje GET /collaborations/my.
func (h *CollaborationHandler) ListMyCollaborations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "wymagana autoryzacja")
		return
	}

	collabs, err := h.listMyUC.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCollaborationResponses(collabs, userID))
}

// notifyOtherParty wysyła zdarzenie do drugiej strony współpracy. Payload
// budowany jest z perspektywy odbiorcy, żeby available_actions były jego.
func (h *CollaborationHandler) notifyOtherParty(organizationID, sponsorID, actorID uuid.UUID, event string, collab *entity.Collaboration) {
	if h.hub == nil {
		return
	}
	recipient := organizationID
	if actorID == organizationID {
		recipient = sponsorID
	}
	_ = h.hub.BroadcastToUser(recipient, event, dto.ToCollaborationResponse(collab, recipient))
}
