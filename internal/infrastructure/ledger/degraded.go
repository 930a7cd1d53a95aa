package ledger

import (
	"sync"
)

// DegradedProvider is the injected best-effort balance source used while the
// backing store is unreachable. It favors availability over correctness:
// values live only in this process and are lost on restart. It is explicit
// configuration, not ambient global state, so tests can swap it.
type DegradedProvider struct {
	defaultBalance float64

	mu       sync.Mutex
	balances map[string]float64
}

// NewDegradedProvider creates a provider seeding unknown players with the
// default starting amount.
func NewDegradedProvider(defaultBalance float64) *DegradedProvider {
	return &DegradedProvider{
		defaultBalance: defaultBalance,
		balances:       make(map[string]float64),
	}
}

// Get returns the in-process balance, creating the default on first access.
func (p *DegradedProvider) Get(playerID string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.getLocked(playerID)
}

// Set overwrites the in-process balance, clamped at zero.
func (p *DegradedProvider) Set(playerID string, amount float64) {
	if amount < 0 {
		amount = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balances[playerID] = amount
}

// Adjust applies a delta to the in-process balance, clamped at zero.
func (p *DegradedProvider) Adjust(playerID string, delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.getLocked(playerID) + delta
	if next < 0 {
		next = 0
	}
	p.balances[playerID] = next
	return next
}

func (p *DegradedProvider) getLocked(playerID string) float64 {
	if amount, ok := p.balances[playerID]; ok {
		return amount
	}
	p.balances[playerID] = p.defaultBalance
	return p.defaultBalance
}
