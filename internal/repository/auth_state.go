package repository

import (
	"sync"
)

// AuthState tracks which Telegram users have verified a phone number.
// The grant is monotonic for the process lifetime: users are added, never
// removed, and the set starts empty on every restart.
type AuthState struct {
	mu    sync.RWMutex
	users map[int64]struct{}
}

func NewAuthState() *AuthState {
	return &AuthState{users: map[int64]struct{}{}}
}

func (a *AuthState) IsAuthorized(userID int64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.users[userID]
	return ok
}

// Authorize is idempotent: authorizing an already-authorized user is a
// no-op, so concurrent grants for the same user are harmless.
func (a *AuthState) Authorize(userID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.users[userID] = struct{}{}
}

func (a *AuthState) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.users)
}
