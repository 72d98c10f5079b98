package sale

import "errors"

var ErrInvalidStatus = errors.New("invalid sale status")

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusPending, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
