package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MessageBody is the {"mensaje": ...} acknowledgement returned by deletes.
type MessageBody struct {
	Message string `json:"mensaje"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	writeError(c, status, code, msg)
}

// RespondServiceError answers with the status and public message carried by an
// *apierr.Error, or 500 with fallbackCode for anything else. The cause is
// attached to the gin context for the request log and never sent.
func RespondServiceError(c *gin.Context, err error, fallbackCode string) {
	if err != nil {
		_ = c.Error(err)
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		code := ae.Code
		if code == "" {
			code = fallbackCode
		}
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		writeError(c, status, code, ae.PublicMessage())
		return
	}
	writeError(c, http.StatusInternalServerError, fallbackCode, apierr.MsgInternal)
}

func writeError(c *gin.Context, status int, code, msg string) {
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

func RespondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}
