package order

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("order: invalid status")

// Status is shared by orders and sub-orders. Any status may move to any
// other; there is no enforced progression.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

var allStatuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus is case-insensitive and returns the canonical spelling.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, v := range allStatuses {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", ErrInvalidStatus
}
