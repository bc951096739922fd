// Package file provides an encrypted file-backed credential repository, the
// persistent analog of a device keychain. Each secret is individually
// encrypted with a gocloud.dev secrets keeper before it touches disk.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"
	"golang.org/x/crypto/hkdf"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
	"github.com/zydeico/sdk-go/internal/store/domain"
)

// formatVersion guards the persisted file shape.
const formatVersion = 1

// storeFile is the persisted JSON shape: one entry per account holding the
// base64 form of the encrypted secret.
type storeFile struct {
	Version int               `json:"version"`
	Service string            `json:"service"`
	Entries map[string]string `json:"entries"`
}

// Repository is a mutex-guarded encrypted file repository.
type Repository struct {
	path      string
	namespace string
	keeper    *secrets.Keeper
	mu        sync.Mutex
}

// NewRepository creates a file repository at path. The encryption key is
// derived from keyMaterial and the service namespace, so two namespaces never
// share a key.
func NewRepository(path, namespace, keyMaterial string) (*Repository, error) {
	if path == "" || keyMaterial == "" {
		return nil, apperrors.Wrap(domain.ErrInvalidParameter, "store path and key material are required")
	}

	key, err := deriveKey(keyMaterial, namespace)
	if err != nil {
		return nil, err
	}

	return &Repository{
		path:      path,
		namespace: namespace,
		keeper:    localsecrets.NewKeeper(key),
	}, nil
}

// Put stores data under account, replacing any existing entry.
func (r *Repository) Put(ctx context.Context, account string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return err
	}

	ciphertext, err := r.keeper.Encrypt(ctx, data)
	if err != nil {
		return apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	store.Entries[account] = base64.StdEncoding.EncodeToString(ciphertext)

	return r.persist(store)
}

// Get returns the decrypted data for account; found is false when absent.
func (r *Repository) Get(ctx context.Context, account string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return nil, false, err
	}

	encoded, ok := store.Entries[account]
	if !ok {
		return nil, false, nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false, apperrors.Wrap(domain.ErrUnexpectedData, err.Error())
	}
	plaintext, err := r.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, false, apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	return plaintext, true, nil
}

// Delete removes the entry for account; deleting an absent entry is a no-op.
func (r *Repository) Delete(ctx context.Context, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := store.Entries[account]; !ok {
		return nil
	}
	delete(store.Entries, account)

	return r.persist(store)
}

// Close releases the underlying keeper.
func (r *Repository) Close() error {
	return r.keeper.Close()
}

// load reads the persisted store, treating a missing file as empty.
func (r *Repository) load() (*storeFile, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return &storeFile{Version: formatVersion, Service: r.namespace, Entries: map[string]string{}}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}

	var store storeFile
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, apperrors.Wrap(domain.ErrUnsupportedFormat, err.Error())
	}
	if store.Version != formatVersion || store.Service != r.namespace {
		return nil, apperrors.Wrapf(domain.ErrUnsupportedFormat,
			"version=%d service=%s", store.Version, store.Service)
	}
	if store.Entries == nil {
		store.Entries = map[string]string{}
	}
	return &store, nil
}

// persist writes the store atomically via a temp file rename.
func (r *Repository) persist(store *storeFile) error {
	raw, err := json.Marshal(store)
	if err != nil {
		return apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".credentials-*")
	if err != nil {
		return apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	return nil
}

// deriveKey expands arbitrary key material into the keeper's 32-byte key.
func deriveKey(keyMaterial, namespace string) ([32]byte, error) {
	var key [32]byte
	reader := hkdf.New(sha256.New, []byte(keyMaterial), []byte(namespace), []byte("credential-store"))
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		return key, apperrors.Wrap(domain.ErrStoreFailed, err.Error())
	}
	return key, nil
}
