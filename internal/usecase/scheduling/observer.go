package scheduling

import (
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/pkg/errs"
)

type Observer interface {
	BookingAdmitted(category machine.Category)
	BookingRejected(reason string)
	MachineTransitioned(event machine.Event, to machine.State)
}

type NopObserver struct{}

func (NopObserver) BookingAdmitted(machine.Category)                 {}
func (NopObserver) BookingRejected(string)                           {}
func (NopObserver) MachineTransitioned(machine.Event, machine.State) {}

func rejectionReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrOverlap):
		return "overlap"
	case errs.Is(err, errs.ErrMachineUnavailable):
		return "machine_unavailable"
	case errs.Is(err, errs.ErrInvalidWindow):
		return "invalid_window"
	case errs.Is(err, errs.ErrSubscriptionInactive):
		return "subscription_inactive"
	case errs.Is(err, errs.ErrOfferNotActive):
		return "offer_not_active"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
