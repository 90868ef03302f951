// Package secret holds the user's transaction PIN for the shortest possible
// lifetime: captured, used to authorize a single submission (plus the
// balance refresh that immediately follows it), then zeroized. It is never
// persisted, serialized or logged.
package secret

import (
	"sync"

	"wallet-client/pkg/errno"
)

// Length is the fixed PIN length required by the Wallet Service.
const Length = 6

// Entry is a single-use 6-digit PIN held in transient memory.
type Entry struct {
	mu     sync.Mutex
	digits []byte
	wiped  bool
}

// New validates and captures a user-entered PIN. The code must be exactly
// six ASCII digits; anything shorter, longer or non-numeric fails with
// ErrIncompleteSecret before any network interaction can happen.
func New(code string) (*Entry, error) {
	if len(code) != Length {
		return nil, errno.ErrIncompleteSecret
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return nil, errno.ErrIncompleteSecret
		}
	}

	digits := make([]byte, Length)
	copy(digits, code)
	return &Entry{digits: digits}, nil
}

// Reveal returns the PIN for one request. It fails once the entry has been
// wiped; a fresh capture is required for every distinct submission attempt.
func (e *Entry) Reveal() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.wiped {
		return "", errno.ErrSecretConsumed
	}
	return string(e.digits), nil
}

// Wipe zeroizes the backing bytes. Idempotent.
func (e *Entry) Wipe() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.digits {
		e.digits[i] = 0
	}
	e.wiped = true
}

// Wiped reports whether the entry has been consumed.
func (e *Entry) Wiped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wiped
}

// String masks the PIN so an accidental printf can never leak it.
func (e *Entry) String() string {
	return "******"
}
