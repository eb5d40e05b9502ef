package booking

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsFinal reports whether a booking in this status is immutable.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
