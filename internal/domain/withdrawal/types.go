package withdrawal

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid withdrawal status")
	ErrInvalidDecision = errors.New("invalid resolution decision")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Decision is the admin's resolution of a pending request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApprove, DecisionReject:
		return Decision(s), nil
	default:
		return "", ErrInvalidDecision
	}
}
