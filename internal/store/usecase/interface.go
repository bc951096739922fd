// Package usecase implements the secure credential store operations on top
// of a pluggable repository.
package usecase

import "context"

// Repository is the persistence contract for namespaced credential entries.
type Repository interface {
	// Put stores data under account, replacing any existing entry.
	Put(ctx context.Context, account string, data []byte) error
	// Get returns the data for account; found is false when absent.
	Get(ctx context.Context, account string) (data []byte, found bool, err error)
	// Delete removes the entry for account; deleting an absent entry is a no-op.
	Delete(ctx context.Context, account string) error
}

// CredentialStore persists small secrets under the SDK service namespace.
type CredentialStore interface {
	// Save upserts the secret for account. Saving twice with the same
	// account never errors due to duplication.
	Save(ctx context.Context, secret, account string) error
	// Retrieve returns the secret for account; found is false (not an
	// error) when the account is absent.
	Retrieve(ctx context.Context, account string) (secret string, found bool, err error)
	// Delete removes the secret for account, succeeding when it never existed.
	Delete(ctx context.Context, account string) error
}
