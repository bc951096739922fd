package dto

// Outcome discriminator values declared by the backend contract.
const (
	OutcomeChallenge     = "CHALLENGE"
	OutcomeNotAuthorized = "NOAUTHORIZED"
)

// AuthenticationResponse is the backend response for the authenticate call:
// the raw outcome discriminator plus challenge correlation identifiers.
type AuthenticationResponse struct {
	Outcome             string `json:"outcome"`
	ServerTransactionID string `json:"server_transaction_id"`
	ACSReferenceNumber  string `json:"acs_reference_number"`
	DSTransactionID     string `json:"ds_transaction_id"`
	ACSTransactionID    string `json:"acs_transaction_id"`
	SignedContent       string `json:"signed_content"`
}
