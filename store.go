package expenses

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

var (
	// ErrDuplicateUsername is reported by CreateAccount when the username is
	// already taken. The store is left unchanged.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is reported by Authenticate. An unknown username
	// and a wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMalformedStore reports a store file that exists but cannot be
	// parsed. Loading recovers by substituting an empty store; callers decide
	// how loudly to warn.
	ErrMalformedStore = errors.New("malformed store file")
)

// Store is the full collection of accounts, the sole root of ownership.
// It is materialized from the store file at startup and flushed back in full
// after every mutating operation; persistence is an explicit SaveStore call
// at those boundaries, never a background side effect.
type Store struct {
	accounts map[string]*Account
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{accounts: make(map[string]*Account)}
}

// Len returns the number of accounts in the store.
func (s *Store) Len() int { return len(s.accounts) }

// Account returns the account for the given username, or nil if unknown.
// Lookup is case-sensitive.
func (s *Store) Account(username string) *Account {
	return s.accounts[username]
}

// Accounts iterates over the accounts in username order.
func (s *Store) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		usernames := slices.Collect(maps.Keys(s.accounts))
		slices.Sort(usernames)
		for _, username := range usernames {
			if !yield(s.accounts[username]) {
				return
			}
		}
	}
}

// CreateAccount constructs an account with an empty ledger and the given
// initial balance and inserts it. It fails with ErrDuplicateUsername if the
// username exists; no mutation occurs in that case. Beyond a non-negative
// age no validation is performed here, deeper checks are the caller's job.
func (s *Store) CreateAccount(username, password string, age int, balance Amount) (*Account, error) {
	if _, exists := s.accounts[username]; exists {
		return nil, fmt.Errorf("cannot create account %q: %w", username, ErrDuplicateUsername)
	}
	if age < 0 {
		return nil, fmt.Errorf("cannot create account %q: age must not be negative, got %d", username, age)
	}
	account := NewAccount(username, password, age, balance)
	s.accounts[username] = account
	return account, nil
}

// Authenticate returns the matching account only if the username exists and
// the password equals the stored credential byte for byte. There is no
// lockout, rate limiting, or timing-safe comparison.
func (s *Store) Authenticate(username, password string) (*Account, error) {
	account, exists := s.accounts[username]
	if !exists || account.password != password {
		return nil, fmt.Errorf("cannot authenticate %q: %w", username, ErrInvalidCredentials)
	}
	return account, nil
}
