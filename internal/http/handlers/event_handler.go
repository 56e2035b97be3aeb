package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	domainrepo "github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/dto"
	"github.com/sponsoring-app/sponsoring-backend/internal/http/handlers/common"
	"github.com/sponsoring-app/sponsoring-backend/internal/interface/http/response"
	"github.com/sponsoring-app/sponsoring-backend/internal/validation"
)

// EventHandler obsługuje wydarzenia i ich pakiety sponsoringu.
type EventHandler struct {
	events  domainrepo.EventRepository
	options domainrepo.SponsorshipOptionRepository
}

// NewEventHandler tworzy handler.
func NewEventHandler(events domainrepo.EventRepository, options domainrepo.SponsorshipOptionRepository) *EventHandler {
	return &EventHandler{events: events, options: options}
}

// CreateEvent obsługuje POST /events. Tylko konta organizacji.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := validation.ValidateEventTitle(req.Title); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateEventDescription(req.Description); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	startsAt, err := dto.ParseStartsAt(req.StartsAt)
	if err != nil {
		common.RespondBadRequest(c, "nieprawidłowy format daty rozpoczęcia")
		return
	}

	event, err := entity.NewEvent(userID, req.Title, req.Description, req.Location, startsAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.events.Create(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// UpdateEvent obsługuje PUT /events/:id.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil {
		common.RespondNotFound(c, "wydarzenie nie zostało znalezione")
		return
	}

	if !event.IsOwnedBy(userID) {
		common.RespondForbidden(c, "")
		return
	}

	if err := validation.ValidateEventTitle(req.Title); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateEventDescription(req.Description); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	startsAt, err := dto.ParseStartsAt(req.StartsAt)
	if err != nil {
		common.RespondBadRequest(c, "nieprawidłowy format daty rozpoczęcia")
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.StartsAt = startsAt
	if req.IsPublished != nil && *req.IsPublished && !event.IsPublished {
		event.Publish()
	}

	if err := h.events.Update(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// PublishEvent obsługuje POST /events/:id/publish.
func (h *EventHandler) PublishEvent(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil {
		common.RespondNotFound(c, "wydarzenie nie zostało znalezione")
		return
	}

	if !event.IsOwnedBy(userID) {
		common.RespondForbidden(c, "")
		return
	}

	event.Publish()
	if err := h.events.Update(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DeleteEvent obsługuje DELETE /events/:id.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil {
		common.RespondNotFound(c, "wydarzenie nie zostało znalezione")
		return
	}

	if !event.IsOwnedBy(userID) {
		common.RespondForbidden(c, "")
		return
	}

	if err := h.events.Delete(c.Request.Context(), eventID); err != nil {
		response.Error(c, err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "wydarzenie zostało usunięte", nil)
}

// GetEvent obsługuje GET /events/:id (razem z pakietami sponsoringu).
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByIDWithOptions(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil {
		common.RespondNotFound(c, "wydarzenie nie zostało znalezione")
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// ListEvents obsługuje GET /events (katalog opublikowanych wydarzeń).
func (h *EventHandler) ListEvents(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	filter := domainrepo.EventFilter{
		OnlyPublished: true,
		Search:        c.Query("search"),
		Limit:         limit,
		Offset:        offset,
	}

	events, total, err := h.events.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, events, total, limit, offset)
}

// ListMyEvents obsługuje GET /events/my (wydarzenia organizacji, także szkice).
func (h *EventHandler) ListMyEvents(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	limit, offset := common.GetPagination(c)

	filter := domainrepo.EventFilter{
		OrganizationID: &userID,
		Limit:          limit,
		Offset:         offset,
	}

	events, total, err := h.events.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, events, total, limit, offset)
}

// CreateOption obsługuje POST /events/:id/options.
func (h *EventHandler) CreateOption(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.SponsorshipOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil {
		common.RespondNotFound(c, "wydarzenie nie zostało znalezione")
		return
	}

	if !event.IsOwnedBy(userID) {
		common.RespondForbidden(c, "")
		return
	}

	if err := validation.ValidatePrice(req.Price, req.PriceTo); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateBenefits(req.Benefits); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	option, err := entity.NewSponsorshipOption(eventID, req.Title, req.Description, req.Price, req.PriceTo, req.Benefits, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.options.Create(c.Request.Context(), option); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"option": option})
}

// UpdateOption obsługuje PUT /events/:id/options/:optionId.
func (h *EventHandler) UpdateOption(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	optionID, err := common.ParseUUIDParam(c, "optionId")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.SponsorshipOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil || !event.IsOwnedBy(userID) {
		common.RespondForbidden(c, "")
		return
	}

	option, err := h.options.FindByID(c.Request.Context(), optionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if option == nil || option.EventID != eventID {
		common.RespondNotFound(c, "pakiet sponsoringu nie został znaleziony")
		return
	}

	if err := validation.ValidatePrice(req.Price, req.PriceTo); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	updated, err := entity.NewSponsorshipOption(eventID, req.Title, req.Description, req.Price, req.PriceTo, req.Benefits, option.IsCustom)
	if err != nil {
		response.Error(c, err)
		return
	}
	updated.ID = option.ID
	updated.CreatedAt = option.CreatedAt

	if err := h.options.Update(c.Request.Context(), updated); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"option": updated})
}

// DeleteOption obsługuje DELETE /events/:id/options/:optionId.
func (h *EventHandler) DeleteOption(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	eventID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	optionID, err := common.ParseUUIDParam(c, "optionId")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.FindByID(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil || !event.IsOwnedBy(userID) {
		common.RespondForbidden(c, "")
		return
	}

	option, err := h.options.FindByID(c.Request.Context(), optionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if option == nil || option.EventID != eventID {
		common.RespondNotFound(c, "pakiet sponsoringu nie został znaleziony")
		return
	}

	if err := h.options.Delete(c.Request.Context(), optionID); err != nil {
		response.Error(c, err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "pakiet sponsoringu został usunięty", nil)
}
