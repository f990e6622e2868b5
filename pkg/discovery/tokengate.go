package discovery

import "sync"

// TokenGate suppresses stale responses. Each outgoing request takes a
// token from Next; when its response arrives, Accept reports whether
// that request is still the latest one issued. Responses for
// superseded requests are dropped instead of overwriting fresher data.
type TokenGate struct {
	mu     sync.Mutex
	latest uint64
}

// Next issues a new request token, superseding all earlier ones.
func (g *TokenGate) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest++
	return g.latest
}

// Accept reports whether token belongs to the latest issued request.
func (g *TokenGate) Accept(token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return token == g.latest
}
