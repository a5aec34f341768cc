// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/atelier-backend/internal/store"
	"github.com/javajoker/atelier-backend/internal/utils"
)

// respondError maps the store error taxonomy onto HTTP responses:
// not found -> 404, validation -> 400, everything else -> 500 with
// failKey as the user-facing message.
func respondError(c *gin.Context, err error, notFoundKey, failKey string) {
	switch {
	case errors.Is(err, store.ErrNotFound) && notFoundKey != "":
		utils.NotFoundResponse(c, notFoundKey)
	case errors.Is(err, store.ErrValidation):
		utils.FieldsNeededResponse(c, utils.GetValidationErrors(err))
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Request failed")
		utils.InternalErrorResponse(c, failKey)
	}
}
