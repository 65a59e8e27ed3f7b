// Package session holds the in-memory table of logged-in users.
//
// A Registry is safe for concurrent use by multiple goroutines. Entries never
// expire; they live until End is called or the process exits.
package session

import (
	"crypto/rand"
	"math/big"
	"sync"
)

const (
	TokenLength = 40
	alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type Registry struct {
	mu       sync.RWMutex
	byToken  map[string]uint
	tokenLen int
}

func NewRegistry() *Registry {
	return &Registry{byToken: make(map[string]uint), tokenLen: TokenLength}
}

// Create issues a fresh token for userID. A user may hold several tokens at
// once; each is ended independently.
func (r *Registry) Create(userID uint) (string, error) {
	token, err := randomToken(r.tokenLen)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.byToken[token] = userID
	r.mu.Unlock()
	return token, nil
}

func (r *Registry) Resolve(token string) (uint, bool) {
	if token == "" {
		return 0, false
	}
	r.mu.RLock()
	id, ok := r.byToken[token]
	r.mu.RUnlock()
	return id, ok
}

// End removes token and reports whether it was present.
func (r *Registry) End(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byToken[token]; !ok {
		return false
	}
	delete(r.byToken, token)
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

func randomToken(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}
