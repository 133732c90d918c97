package httperr

import (
	"net/http"

	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first match wins, so narrower kinds come first.
var domainMappings = []mapping{
	{errs.ErrInvalidSignature, http.StatusUnauthorized, "Invalid payment signature"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrInvalidDateRange, http.StatusBadRequest, "Check-out must be after check-in"},
	{errs.ErrSoldOut, http.StatusConflict, "Room type is sold out for the requested dates"},
	{errs.ErrDependencyFailed, http.StatusFailedDependency, "A required service failed"},
	{errs.ErrPaymentFailed, http.StatusPaymentRequired, "Payment failed"},
	{errs.ErrUnknownOrder, http.StatusNotFound, "Unknown order"},
	{errs.ErrConcurrentModification, http.StatusConflict, "The resource was modified concurrently, please retry"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Reservation cannot move to the requested status"},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header is required"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
	{errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency key was used with a different request"},
	{errs.ErrAlreadyExists, http.StatusConflict, "Resource already exists"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
}

// StatusOf maps a use case error to its HTTP status and public message.
func StatusOf(err error) (int, string) {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithDomainError aborts with the status StatusOf picks for err.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}
