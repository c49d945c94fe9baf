package http

import (
	"errors"
	"net/http"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
	"production/internal/core/ports"
	"production/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ruleViolations are the movement and binding rules whose violation means
// the request was well-formed but not allowed in the order's current state.
var ruleViolations = []error{
	services.ErrWorkcenterRequired,
	services.ErrPanRequiredForCharging,
	services.ErrBufferMustBeNullForPhase,
	services.ErrPhaseRequired,
	services.ErrBufferRequired,
	services.ErrPhaseMustBeNullForBuffer,
	services.ErrResourcesMustBeNullForBuffer,
	services.ErrForwardStepTooLarge,
	services.ErrInvalidBufferForCurrentPhase,
	services.ErrWorkcenterPhaseMismatch,
	order.ErrWorkcenterRequiredInPhase,
	order.ErrPanRequiredInCharging,
	order.ErrResourcesForbiddenInBuffer,
}

// statusFromError maps use case errors onto HTTP statuses: missing
// referenced objects are 404, claimed resources and duplicate numbers are
// 409, rule violations are 422, everything else is a server fault.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrOrderNumberAlreadyExists),
		errors.Is(err, commands.ErrPanNotFoundOrUnavailable):
		return http.StatusConflict
	default:
		for _, violation := range ruleViolations {
			if errors.Is(err, violation) {
				return http.StatusUnprocessableEntity
			}
		}
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
