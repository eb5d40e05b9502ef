package machine

type State string

const (
	StateAvailable   State = "available"
	StateBooked      State = "booked"
	StateMaintenance State = "maintenance"
	StateCompleted   State = "completed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAvailable, StateBooked, StateMaintenance, StateCompleted:
		return true
	default:
		return false
	}
}

type Event string

const (
	EventReserve          Event = "reserve"
	EventBegin            Event = "begin"
	EventFinish           Event = "finish"
	EventCancel           Event = "cancel"
	EventEnterMaintenance Event = "enter_maintenance"
	EventExitMaintenance  Event = "exit_maintenance"
	// EventRelease returns a completed machine to the floor without a new booking.
	EventRelease Event = "release"
)

func (e Event) String() string {
	return string(e)
}

func (e Event) IsValid() bool {
	switch e {
	case EventReserve, EventBegin, EventFinish, EventCancel,
		EventEnterMaintenance, EventExitMaintenance, EventRelease:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the event may be driven directly by staff rather
// than as a side effect of a booking operation.
func (e Event) IsOperator() bool {
	switch e {
	case EventEnterMaintenance, EventExitMaintenance, EventRelease:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryPC        Category = "pc"
	CategoryConsole   Category = "console"
	CategoryVR        Category = "vr"
	CategorySimulator Category = "simulator"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPC, CategoryConsole, CategoryVR, CategorySimulator:
		return true
	default:
		return false
	}
}
