package usecase

import (
	"context"
	"sync"
	"unicode/utf8"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
	"github.com/zydeico/sdk-go/internal/store/domain"
)

// credentialStore implements CredentialStore over a repository, serializing
// concurrent save/retrieve/delete calls to avoid read-modify-write races.
type credentialStore struct {
	repo Repository
	mu   sync.Mutex
}

// NewCredentialStore creates the credential store use case.
func NewCredentialStore(repo Repository) CredentialStore {
	return &credentialStore{repo: repo}
}

// Save upserts the secret for account with delete-then-add semantics.
func (s *credentialStore) Save(ctx context.Context, secret, account string) error {
	if account == "" {
		return apperrors.Wrap(domain.ErrInvalidParameter, "account is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Remove any existing entry first so a re-save can never fail on a
	// duplicate.
	if err := s.repo.Delete(ctx, account); err != nil {
		return err
	}
	return s.repo.Put(ctx, account, []byte(secret))
}

// Retrieve returns the secret for account, absent as found=false.
func (s *credentialStore) Retrieve(ctx context.Context, account string) (string, bool, error) {
	if account == "" {
		return "", false, apperrors.Wrap(domain.ErrInvalidParameter, "account is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.repo.Get(ctx, account)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	if !utf8.Valid(data) {
		return "", false, apperrors.Wrap(domain.ErrUnexpectedData, "stored payload is not a utf-8 string")
	}
	return string(data), true, nil
}

// Delete removes the secret for account; absent entries are not an error.
func (s *credentialStore) Delete(ctx context.Context, account string) error {
	if account == "" {
		return apperrors.Wrap(domain.ErrInvalidParameter, "account is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Delete(ctx, account)
}
