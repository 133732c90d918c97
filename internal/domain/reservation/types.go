package reservation

import "strings"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// Topic is the notification topic suffix for entering s, e.g. "checked_in".
func (s Status) Topic() string {
	return strings.ToLower(string(s))
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// HoldsInventory is false only for cancelled reservations. Checked-out stays
// still count so history queries stay consistent with what was sold.
func (s Status) HoldsInventory() bool {
	return s.IsValid() && s != StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
