package usecase

import (
	"log/slog"
	"sync"

	"github.com/zydeico/sdk-go/internal/threeds/domain"
)

// ClosingReceiver wraps a ChallengeReceiver and guarantees the transaction
// handle is closed exactly once when the challenge reaches any terminal
// outcome. Duplicate callbacks after the first terminal one are dropped.
type ClosingReceiver struct {
	transaction domain.Transaction
	next        domain.ChallengeReceiver
	logger      *slog.Logger
	once        sync.Once
}

// NewClosingReceiver wires transaction lifecycle management around the
// caller's receiver for one challenge attempt.
func NewClosingReceiver(
	transaction domain.Transaction,
	next domain.ChallengeReceiver,
	logger *slog.Logger,
) *ClosingReceiver {
	return &ClosingReceiver{transaction: transaction, next: next, logger: logger}
}

// Completed implements domain.ChallengeReceiver.
func (r *ClosingReceiver) Completed(transactionStatus, transactionID string) {
	r.terminal(func() { r.next.Completed(transactionStatus, transactionID) })
}

// Cancelled implements domain.ChallengeReceiver.
func (r *ClosingReceiver) Cancelled() {
	r.terminal(func() { r.next.Cancelled() })
}

// TimedOut implements domain.ChallengeReceiver.
func (r *ClosingReceiver) TimedOut() {
	r.terminal(func() { r.next.TimedOut() })
}

// ProtocolError implements domain.ChallengeReceiver.
func (r *ClosingReceiver) ProtocolError(transactionID, code, message, detail string) {
	r.terminal(func() { r.next.ProtocolError(transactionID, code, message, detail) })
}

// RuntimeError implements domain.ChallengeReceiver.
func (r *ClosingReceiver) RuntimeError(code, message string) {
	r.terminal(func() { r.next.RuntimeError(code, message) })
}

// terminal closes the transaction and forwards the outcome, once. A close
// failure is reported but does not suppress the forwarded outcome.
func (r *ClosingReceiver) terminal(forward func()) {
	r.once.Do(func() {
		if r.transaction != nil {
			if err := r.transaction.Close(); err != nil {
				r.logger.Warn("failed to close 3ds transaction", slog.String("error", err.Error()))
			}
		}
		forward()
	})
}
