package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsoring-app/sponsoring-backend/internal/dto"
	"github.com/sponsoring-app/sponsoring-backend/internal/http/handlers/common"
	"github.com/sponsoring-app/sponsoring-backend/internal/models"
	"github.com/sponsoring-app/sponsoring-backend/internal/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/validation"
)

// ProfileHandler obsługuje odczyt i edycję profili.
type ProfileHandler struct {
	users *repository.UserRepository
}

// NewProfileHandler tworzy handler.
func NewProfileHandler(users *repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// GetMyProfile obsługuje GET /profiles/me.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		common.RespondNotFound(c, "profil nie został znaleziony")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetProfile obsługuje GET /profiles/:id (profil publiczny).
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		common.RespondNotFound(c, "użytkownik nie został znaleziony")
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		common.RespondNotFound(c, "profil nie został znaleziony")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
		"profile": profile,
	})
}

// UpdateMyProfile obsługuje PUT /profiles/me.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := validation.ValidateDisplayName(req.DisplayName); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if req.Bio != nil {
		if err := validation.ValidateLength("bio", *req.Bio, 0, validation.MaxBioLength); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}

	if req.Location != nil {
		if err := validation.ValidateLength("lokalizacja", *req.Location, 0, validation.MaxLocationLength); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}

	var photoID *uuid.UUID
	if req.PhotoID != nil && *req.PhotoID != "" {
		parsed, err := uuid.Parse(*req.PhotoID)
		if err != nil {
			common.RespondBadRequest(c, "nieprawidłowy identyfikator zdjęcia")
			return
		}
		photoID = &parsed
	}

	profile := &models.Profile{
		UserID:           userID,
		DisplayName:      req.DisplayName,
		Bio:              req.Bio,
		Location:         req.Location,
		PhotoID:          photoID,
		Phone:            req.Phone,
		Website:          req.Website,
		OrganizationName: req.OrganizationName,
		KRS:              req.KRS,
		NIP:              req.NIP,
	}

	if err := h.users.UpsertProfile(c.Request.Context(), profile); err != nil {
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
