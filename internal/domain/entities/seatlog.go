package entities

import "time"

// UsageInterval is one check-in/check-out record from the seat usage log,
// joined with the seat label and employee name it references. An interval
// with a nil CheckOut and a CheckIn not in the future marks the seat as
// currently occupied. The writer guarantees at most one open interval per
// seat; this service only reads the log and relies on that invariant.
type UsageInterval struct {
	ID        int64      `json:"id"`
	SeatLabel string     `json:"seat_label"`
	EmpCode   string     `json:"emp_code"`
	EmpName   string     `json:"emp_name"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
}

// Open reports whether the interval has no check-out yet.
func (u UsageInterval) Open() bool {
	return u.CheckOut == nil
}

// SeatUsage is the interval count for one seat.
type SeatUsage struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthlyUsage is the interval count for one calendar month, keyed by
// the check-in month in "2006-01" form.
type MonthlyUsage struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
