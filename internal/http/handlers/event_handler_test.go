package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventHandler_CreateEvent_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &EventHandler{}
	r.POST("/events", handler.CreateEvent)

	req, _ := http.NewRequest("POST", "/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventHandler_GetEvent_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &EventHandler{}
	r.GET("/events/:id", handler.GetEvent)

	req, _ := http.NewRequest("GET", "/events/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_UpdateEvent_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &EventHandler{}
	r.PUT("/events/:id", handler.UpdateEvent)

	eventID := uuid.New()
	req, _ := http.NewRequest("PUT", "/events/"+eventID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotificationHandler_ListNotifications_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &NotificationHandler{notifications: nil}
	r.GET("/notifications", handler.ListNotifications)

	req, _ := http.NewRequest("GET", "/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMediaHandler_DeleteMedia_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &MediaHandler{}
	r.DELETE("/media/:id", handler.DeleteMedia)

	mediaID := uuid.New()
	req, _ := http.NewRequest("DELETE", "/media/"+mediaID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
