package fontface

import (
	"context"
	"strings"
	"sync"

	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/model"
)

// Registry records the font-face rules injected during a view's lifetime.
// Rules are keyed by family name and never removed.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Inject registers a rule for every font whose name is not registered yet
// and returns the new rules in input order. Fonts that cannot produce a
// rule are logged and left unregistered.
func (r *Registry) Inject(ctx context.Context, fonts []model.Font) []Rule {
	log := logging.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	var added []Rule
	for _, font := range fonts {
		if _, exists := r.rules[font.Name]; exists {
			continue
		}

		rule, err := NewRule(font)
		if err != nil {
			log.Warn().Err(err).Str("font", font.Name).Msg("skipping font-face rule")
			continue
		}

		r.rules[font.Name] = rule
		r.order = append(r.order, font.Name)
		added = append(added, rule)
	}

	if len(added) > 0 {
		log.Debug().Int("added", len(added)).Int("total", len(r.order)).Msg("font-face rules injected")
	}
	return added
}

// Has reports whether a rule exists for name
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

// Rule returns the rule registered for name
func (r *Registry) Rule(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	return rule, ok
}

// Len returns the number of registered rules
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Rules returns every registered rule in insertion order
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		rules = append(rules, r.rules[name])
	}
	return rules
}

// Stylesheet renders every rule, one declaration per line
func (r *Registry) Stylesheet() string {
	rules := r.Rules()
	if len(rules) == 0 {
		return ""
	}

	var b strings.Builder
	for _, rule := range rules {
		b.WriteString(rule.CSS())
		b.WriteByte('\n')
	}
	return b.String()
}
