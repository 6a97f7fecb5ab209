package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/readrhq/readr/internal/apperr"
)

// --- Response Envelope ---

// successEnvelope wraps every successful payload as {ok:true, data:...}.
type successEnvelope struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

// errorEnvelope wraps every failure as {ok:false, error:{...}}.
type errorEnvelope struct {
	OK    bool      `json:"ok"`
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// respondOK sends a 200 response with the success envelope.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, successEnvelope{OK: true, Data: data})
}

// respondCreated sends a 201 response with the success envelope.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, successEnvelope{OK: true, Data: data})
}

// respondError is the single error-formatting stage. Every failure from
// validation, handlers or the store funnels through here; nothing else writes
// an error response. Unrecognized errors become INTERNAL_ERROR with the cause
// logged server-side and withheld from the client.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Code == apperr.CodeInternal {
		log.Printf("Internal error (%s %s): %v", c.Request.Method, c.Request.URL.Path, appErr.Cause())
	}
	c.JSON(appErr.Status, errorEnvelope{
		OK: false,
		Error: errorBody{
			Message: appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		},
	})
}

// --- Request Parsing ---

// bindJSON decodes the request body into dst, normalizing decode failures
// into the error taxonomy: an unparseable body is BAD_REQUEST, a field of the
// wrong type is VALIDATION_ERROR with the offending field path.
func bindJSON(c *gin.Context, dst any) *apperr.Error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.Validation("Validation failed", map[string]string{
				typeErr.Field: "must be of type " + typeErr.Type.String(),
			})
		}
		return apperr.BadRequest("request body must be valid JSON")
	}
	return nil
}

// notFoundOr maps a persistence no-rows result to NOT_FOUND with the given
// message; any other store failure passes through to the taxonomy untouched.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(message)
	}
	return err
}
