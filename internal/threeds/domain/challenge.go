package domain

import "sync"

// ChallengeReceiver is the contract the challenge-presentation component
// reports through. Exactly one method is invoked exactly once per challenge
// attempt.
type ChallengeReceiver interface {
	// Completed reports a finished challenge with its transaction status.
	Completed(transactionStatus, transactionID string)
	// Cancelled reports that the user abandoned the challenge.
	Cancelled()
	// TimedOut reports that the challenge expired before completion.
	TimedOut()
	// ProtocolError reports a 3DS protocol-level failure.
	ProtocolError(transactionID, code, message, detail string)
	// RuntimeError reports a failure inside the challenge component itself.
	RuntimeError(code, message string)
}

// ChallengeOutcome discriminates the terminal challenge results.
type ChallengeOutcome string

const (
	ChallengeCompleted     ChallengeOutcome = "completed"
	ChallengeCancelled     ChallengeOutcome = "cancelled"
	ChallengeTimedOut      ChallengeOutcome = "timed_out"
	ChallengeProtocolError ChallengeOutcome = "protocol_error"
	ChallengeRuntimeError  ChallengeOutcome = "runtime_error"
)

// ChallengeResult is the tagged terminal result of one challenge attempt.
// Only the fields relevant to the Outcome are populated.
type ChallengeResult struct {
	Outcome           ChallengeOutcome
	TransactionStatus string
	TransactionID     string
	Code              string
	Message           string
	Detail            string
}

// ResultReceiver adapts the callback-style receiver contract into a single
// awaited result: exactly one ChallengeResult is delivered on Result, no
// matter how the challenge terminates. Duplicate callbacks are dropped.
type ResultReceiver struct {
	once    sync.Once
	results chan ChallengeResult
}

// NewResultReceiver creates a one-shot challenge result receiver.
func NewResultReceiver() *ResultReceiver {
	return &ResultReceiver{results: make(chan ChallengeResult, 1)}
}

// Result delivers the terminal challenge result exactly once.
func (r *ResultReceiver) Result() <-chan ChallengeResult {
	return r.results
}

// Completed implements ChallengeReceiver.
func (r *ResultReceiver) Completed(transactionStatus, transactionID string) {
	r.deliver(ChallengeResult{
		Outcome:           ChallengeCompleted,
		TransactionStatus: transactionStatus,
		TransactionID:     transactionID,
	})
}

// Cancelled implements ChallengeReceiver.
func (r *ResultReceiver) Cancelled() {
	r.deliver(ChallengeResult{Outcome: ChallengeCancelled})
}

// TimedOut implements ChallengeReceiver.
func (r *ResultReceiver) TimedOut() {
	r.deliver(ChallengeResult{Outcome: ChallengeTimedOut})
}

// ProtocolError implements ChallengeReceiver.
func (r *ResultReceiver) ProtocolError(transactionID, code, message, detail string) {
	r.deliver(ChallengeResult{
		Outcome:       ChallengeProtocolError,
		TransactionID: transactionID,
		Code:          code,
		Message:       message,
		Detail:        detail,
	})
}

// RuntimeError implements ChallengeReceiver.
func (r *ResultReceiver) RuntimeError(code, message string) {
	r.deliver(ChallengeResult{
		Outcome: ChallengeRuntimeError,
		Code:    code,
		Message: message,
	})
}

func (r *ResultReceiver) deliver(result ChallengeResult) {
	r.once.Do(func() {
		r.results <- result
	})
}
