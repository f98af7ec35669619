package core

// Metrics records business events of the withdrawal workflow
type Metrics interface {
	// WithdrawalRequested counts an accepted withdrawal request
	WithdrawalRequested()
	// WithdrawalReviewed counts a review outcome by resulting status
	WithdrawalReviewed(status string)
}
