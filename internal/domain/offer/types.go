package offer

type Category string

const (
	CategoryTimeBased Category = "time-based"
	CategoryExclusive Category = "exclusive"
	CategoryStanding  Category = "standing"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTimeBased, CategoryExclusive, CategoryStanding:
		return true
	default:
		return false
	}
}

// IsWindowed reports whether offers of this category are bound to a time window.
func (c Category) IsWindowed() bool {
	return c == CategoryTimeBased || c == CategoryExclusive
}

// Status is always derived from the offer and the current time, never stored.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusInvalid Status = "invalid"
)

func (s Status) String() string {
	return string(s)
}
