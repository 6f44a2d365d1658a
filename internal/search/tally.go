package search

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"weathergrip/internal/eventbus"
)

// Tally counts search outcomes published on the bus
type Tally struct {
	mu        sync.Mutex
	started   int
	rejected  int
	succeeded int
	discarded int
	failed    map[string]int // by error kind
	unsub     []func()
}

// NewTally subscribes a tally to bus
func NewTally(bus eventbus.EventBus) *Tally {
	t := &Tally{failed: make(map[string]int)}
	t.unsub = []func(){
		bus.Subscribe(eventbus.EventSearchStarted, func(eventbus.DomainEvent) { t.add(&t.started) }),
		bus.Subscribe(eventbus.EventSearchRejected, func(eventbus.DomainEvent) { t.add(&t.rejected) }),
		bus.Subscribe(eventbus.EventSearchSucceeded, func(eventbus.DomainEvent) { t.add(&t.succeeded) }),
		bus.Subscribe(eventbus.EventSearchDiscarded, func(eventbus.DomainEvent) { t.add(&t.discarded) }),
		bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SearchFailedEvent); ok {
				t.mu.Lock()
				t.failed[ev.Kind.String()]++
				t.mu.Unlock()
			}
		}),
	}
	return t
}

func (t *Tally) add(n *int) {
	t.mu.Lock()
	*n++
	t.mu.Unlock()
}

// Stop unsubscribes the tally
func (t *Tally) Stop() {
	for _, fn := range t.unsub {
		fn()
	}
	t.unsub = nil
}

// Failed returns the failure count for an error kind name
func (t *Tally) Failed(kind string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed[kind]
}

// String summarizes the session, e.g. "started=3 succeeded=1 rejected=1 discarded=1 failed[network_error]=1"
func (t *Tally) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	parts := []string{
		fmt.Sprintf("started=%d", t.started),
		fmt.Sprintf("succeeded=%d", t.succeeded),
		fmt.Sprintf("rejected=%d", t.rejected),
		fmt.Sprintf("discarded=%d", t.discarded),
	}

	kinds := make([]string, 0, len(t.failed))
	for k := range t.failed {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("failed[%s]=%d", k, t.failed[k]))
	}

	return strings.Join(parts, " ")
}
