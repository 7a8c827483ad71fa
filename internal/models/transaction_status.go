package models

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusPending     TransactionStatus = "PENDING"
	StatusSubmitted   TransactionStatus = "SUBMITTED"
	StatusDeposited   TransactionStatus = "DEPOSITED"
	StatusCleared     TransactionStatus = "CLEARED"
	StatusBounced     TransactionStatus = "BOUNCED"
	StatusStopped     TransactionStatus = "STOPPED"
	StatusTransferred TransactionStatus = "TRANSFERRED"
	StatusSettled     TransactionStatus = "SETTLED"
	StatusDebited     TransactionStatus = "DEBITED"
	StatusReceived    TransactionStatus = "RECEIVED"
	StatusCompleted   TransactionStatus = "COMPLETED"
	StatusFailed      TransactionStatus = "FAILED"
	StatusCancelled   TransactionStatus = "CANCELLED"
)

// greenStatuses are the balance-affecting statuses. Everything else is red.
var greenStatuses = map[TransactionStatus]bool{
	StatusDeposited:   true,
	StatusCleared:     true,
	StatusSettled:     true,
	StatusTransferred: true,
	StatusDebited:     true,
	StatusReceived:    true,
	StatusCompleted:   true,
}

// IsGreen reports whether a transaction in this status moves money.
func (s TransactionStatus) IsGreen() bool {
	return greenStatuses[s]
}

// IsValid reports whether s is any known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusDeposited, StatusCleared,
		StatusBounced, StatusStopped, StatusTransferred, StatusSettled,
		StatusDebited, StatusReceived, StatusCompleted, StatusFailed,
		StatusCancelled:
		return true
	}
	return false
}
