package domain

import "fmt"

type Status string

const (
	StatusReceived   Status = "RECEIVED"
	StatusAssigned   Status = "ASSIGNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// transitions lists the allowed target states per current state.
// Terminal states (COMPLETED, CANCELLED) have no entries.
var transitions = map[Status][]Status{
	StatusReceived:   {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// ActiveStatuses are the non-terminal states that count against the
// per-slot capacity.
var ActiveStatuses = []Status{StatusReceived, StatusAssigned, StatusInProgress}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusReceived, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(raw), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
}
