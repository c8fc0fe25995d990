package metrics

import (
	"errors"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// ResultLabel maps an operation outcome to a low-cardinality label value
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrCapacityExhausted):
		return ResultExhausted
	case errors.Is(err, domain.ErrInvalidInput):
		return ResultInvalid
	case errors.Is(err, domain.ErrForbidden):
		return ResultForbidden
	default:
		return ResultError
	}
}
