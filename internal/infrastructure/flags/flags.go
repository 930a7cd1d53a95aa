// Package flags provides the runtime toggle lookup used by the engines and
// the settlement orchestrator. Flags come from configuration with an
// environment variable override, which is enough for operational kill
// switches without a flag service.
package flags

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Provider implements domain.FlagProvider over a static map seeded from
// configuration. Environment variables of the form CASINO_FLAG_<KEY> (key
// upper-cased, dots and dashes replaced with underscores) win over the map.
type Provider struct {
	mu    sync.RWMutex
	flags map[string]bool
}

func NewProvider(flags map[string]bool) *Provider {
	if flags == nil {
		flags = make(map[string]bool)
	}
	copied := make(map[string]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &Provider{flags: copied}
}

// BoolFlag resolves a flag with env override, config value, then default.
func (p *Provider) BoolFlag(_ context.Context, key string, defaultValue bool) bool {
	if raw, ok := os.LookupEnv(envName(key)); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.flags[key]; ok {
		return v
	}
	return defaultValue
}

// Set overrides a flag at runtime. Used by tests and the admin surface.
func (p *Provider) Set(key string, value bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flags[key] = value
}

func envName(key string) string {
	normalized := strings.NewReplacer(".", "_", "-", "_").Replace(key)
	return "CASINO_FLAG_" + strings.ToUpper(normalized)
}
