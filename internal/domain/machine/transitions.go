package machine

import "lounge-scheduler/internal/pkg/errs"

type transitionKey struct {
	from  State
	event Event
}

var transitions = map[transitionKey]State{
	{StateAvailable, EventReserve}:          StateBooked,
	{StateAvailable, EventEnterMaintenance}: StateMaintenance,

	{StateBooked, EventReserve}: StateBooked,
	{StateBooked, EventBegin}:   StateBooked,
	{StateBooked, EventFinish}:  StateCompleted,
	{StateBooked, EventCancel}:  StateAvailable,

	{StateCompleted, EventReserve}:          StateBooked,
	{StateCompleted, EventRelease}:          StateAvailable,
	{StateCompleted, EventEnterMaintenance}: StateMaintenance,

	{StateMaintenance, EventExitMaintenance}: StateAvailable,
}

// Next returns the state reached from `from` on `event`. Cells missing from the
// transition table are rejected with ErrInvalidTransition.
func Next(from State, event Event) (State, error) {
	to, ok := transitions[transitionKey{from, event}]
	if !ok {
		return from, errs.Mark(
			errs.Newf("machine cannot %s while %s", event, from),
			errs.ErrInvalidTransition,
		)
	}
	return to, nil
}

func Accepts(from State, event Event) bool {
	_, ok := transitions[transitionKey{from, event}]
	return ok
}
