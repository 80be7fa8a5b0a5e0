package withdrawal

import (
	"career-bridge/domain"
	"sync"
)

// StatusStrategy decides the status a new withdrawal starts in.
type StatusStrategy interface {
	InitialStatus() string
}

// PendingStrategy leaves every new request waiting for an admin.
type PendingStrategy struct{}

func (PendingStrategy) InitialStatus() string {
	return domain.WithdrawalStatusPending
}

// AlternatingStrategy hands out PENDING and APPROVED in turn. It is only used
// to seed demo data with a mix of states.
type AlternatingStrategy struct {
	mu       sync.Mutex
	approved bool
}

func (s *AlternatingStrategy) InitialStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.WithdrawalStatusPending
	if s.approved {
		status = domain.WithdrawalStatusApproved
	}
	s.approved = !s.approved
	return status
}

var transitions = map[string][]string{
	domain.WithdrawalStatusPending: {
		domain.WithdrawalStatusApproved,
		domain.WithdrawalStatusProcessing,
		domain.WithdrawalStatusFailed,
	},
	domain.WithdrawalStatusApproved: {
		domain.WithdrawalStatusProcessing,
		domain.WithdrawalStatusFailed,
	},
	domain.WithdrawalStatusProcessing: {
		domain.WithdrawalStatusCompleted,
		domain.WithdrawalStatusFailed,
	},
}

// CanTransition reports whether a withdrawal may move from one status to
// another. COMPLETED and FAILED are terminal.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case domain.WithdrawalStatusPending,
		domain.WithdrawalStatusApproved,
		domain.WithdrawalStatusProcessing,
		domain.WithdrawalStatusCompleted,
		domain.WithdrawalStatusFailed:
		return true
	}
	return false
}
