package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/analytics"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// statusClientClosedRequest is the nginx convention for a caller that went
// away mid-request; net/http has no constant for it.
const statusClientClosedRequest = 499

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError translates the typed errors coming out of the service
// layer. The analytics core itself never logs or maps; this is the only place
// its codes become HTTP statuses.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case analytics.IsCode(err, analytics.CodeInvalidPage):
		RespondError(c, http.StatusBadRequest, string(analytics.CodeInvalidPage), err)
	case analytics.IsCode(err, analytics.CodeStorageUnavailable):
		RespondError(c, http.StatusServiceUnavailable, string(analytics.CodeStorageUnavailable), err)
	case analytics.IsCode(err, analytics.CodeCanceled):
		RespondError(c, statusClientClosedRequest, string(analytics.CodeCanceled), err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
