package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/usecases/subscribe_newsletter"
	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/usecases/track_event"
)

// StorefrontHandler serves the write endpoints of the storefront.
// Responses carry a success flag alongside the message.
type StorefrontHandler struct {
	subscribe *subscribe_newsletter.Interactor
	track     *track_event.Interactor
	logger    *zap.Logger
}

// NewStorefrontHandler creates a new storefront handler.
func NewStorefrontHandler(
	subscribe *subscribe_newsletter.Interactor,
	track *track_event.Interactor,
	logger *zap.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		subscribe: subscribe,
		track:     track,
		logger:    logger,
	}
}

type newsletterBody struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type trackBody struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
	UserID     string         `json:"userId"`
	Timestamp  string         `json:"timestamp"`
}

// Subscribe handles POST /api/newsletter.
func (h *StorefrontHandler) Subscribe(c *gin.Context) {
	var body newsletterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := h.subscribe.Execute(c.Request.Context(), &subscribe_newsletter.Request{
		Email:  body.Email,
		Source: body.Source,
	})
	if err != nil {
		status, msg := h.failure(c, err, "Failed to subscribe. Please try again.")
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully subscribed to newsletter!"})
}

// Track handles POST /api/analytics/track.
func (h *StorefrontHandler) Track(c *gin.Context) {
	var body trackBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	resp, err := h.track.Execute(c.Request.Context(), &track_event.Request{
		Event:      body.Event,
		Properties: body.Properties,
		UserID:     body.UserID,
		Timestamp:  body.Timestamp,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		status, msg := h.failure(c, err, "Failed to track event")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Event tracked successfully",
		"event_id": resp.EventID,
	})
}

// failure maps err and replaces server-side messages with fallback.
func (h *StorefrontHandler) failure(c *gin.Context, err error, fallback string) (int, string) {
	status, msg := mapDomainErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("request_id", RequestIDFrom(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		msg = fallback
	}
	return status, msg
}
