package shared

import (
	"lounge-scheduler/internal/infra"
	"lounge-scheduler/internal/pkg/errs"
)

// TranslateRepoErr maps repository failures onto the usecase error taxonomy.
// Errors that already carry a taxonomy mark pass through unchanged.
func TranslateRepoErr(err error, what string) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, what), errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(errs.Wrap(err, what), errs.ErrOverlap)
	case IsCategorised(err):
		return err
	default:
		return errs.Mark(errs.Wrap(err, what), errs.ErrDatabaseOperationFailed)
	}
}

func IsCategorised(err error) bool {
	return errs.IsAny(err,
		errs.ErrInvalidWindow,
		errs.ErrOverlap,
		errs.ErrMachineUnavailable,
		errs.ErrInvalidTransition,
		errs.ErrNotFound,
		errs.ErrConfiguration,
		errs.ErrValidation,
		errs.ErrSubscriptionInactive,
		errs.ErrOfferNotActive,
		errs.ErrDatabaseOperationFailed,
	)
}
