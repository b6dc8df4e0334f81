package http

import (
	"errors"
	"net/http"

	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/review"
	"bizza/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// jsonError maps application errors onto HTTP statuses:
//
//   - invalid / missing / out-of-range values -> 400
//   - unknown object                          -> 404
//   - state machine refusals, duplicates and
//     optimistic-lock conflicts               -> 409
//   - everything else                         -> 500
func jsonError(ctx echo.Context, err error) error {
	code := statusFor(err)

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrImmutableState),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, commands.ErrActiveProposalExists),
		errors.Is(err, budget.ErrBudgetNotApproved),
		errors.Is(err, review.ErrDuplicateReview):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest reports request-shape problems: unparsable bodies, malformed
// ids, command constructor refusals.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
