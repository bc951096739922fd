package domain

// Status is the orchestrator's classification of the authentication-begin
// response. It is derived exclusively from that response and never mutated.
type Status string

const (
	// StatusChallenge means the issuer requires a user-facing challenge.
	StatusChallenge Status = "CHALLENGE"
	// StatusNotAuthorized means the attempt terminated without a challenge.
	StatusNotAuthorized Status = "NOAUTHORIZED"
)

// Transaction is an opaque handle to an in-progress 3DS SDK transaction,
// owned by the external 3DS SDK component. The orchestrator holds a reference
// for the duration of one authentication attempt and closes it exactly once
// on every terminal path.
type Transaction interface {
	Close() error
}

// Authenticated is the terminal classification of one authentication-begin
// call. A Challenge status requires a further external interaction cycle; it
// is not yet the final authentication result.
type Authenticated struct {
	// Status is Challenge or NotAuthorized.
	Status Status
	// ServerTransactionID correlates the attempt on the 3DS server.
	ServerTransactionID string
	// ACSReferenceNumber identifies the issuer's access control server.
	ACSReferenceNumber string
	// DSTransactionID correlates the attempt on the directory server.
	DSTransactionID string
	// ACSTransactionID correlates the attempt on the access control server.
	ACSTransactionID string
	// SignedContent is the signed payload consumed by the challenge component.
	SignedContent string
	// Transaction is the in-flight transaction handle for this attempt.
	Transaction Transaction
}
