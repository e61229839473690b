package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogdomain "github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	storefrontdomain "github.com/light-bringer/ecofinds-storefront/internal/app/storefront/domain"
)

// mapDomainErrorToHTTP converts a use case error to a status code and a
// client-safe message.
func mapDomainErrorToHTTP(err error) (int, string) {
	var verr *catalogdomain.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()

	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"

	case errors.Is(err, catalogdomain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"

	case errors.Is(err, storefrontdomain.ErrInvalidEmail):
		return http.StatusBadRequest, "Please provide a valid email address"

	case errors.Is(err, storefrontdomain.ErrMissingEventName):
		return http.StatusBadRequest, "Event name is required"

	default:
		// Data source failures included.
		return http.StatusInternalServerError, "internal server error"
	}
}

// writeError responds with {"error": message}. Server-side failures are
// logged with the underlying error, which is never sent to the client.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status, msg := mapDomainErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request_id", RequestIDFrom(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
