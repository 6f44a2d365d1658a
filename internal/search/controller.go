// Package search drives a single location search: input validation, the loading
// state, and the transition to a result or an error. Only the latest submission
// may change the displayed state; results of superseded requests are dropped.
package search

import (
	"context"
	"log"
	"strings"
	"sync"

	"weathergrip/internal/domain"
	"weathergrip/internal/eventbus"
)

// Fetcher is the data source collaborator
type Fetcher interface {
	FetchCurrentConditions(ctx context.Context, query string) (domain.WeatherSnapshot, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, query string) (domain.WeatherSnapshot, error)

func (f FetcherFunc) FetchCurrentConditions(ctx context.Context, query string) (domain.WeatherSnapshot, error) {
	return f(ctx, query)
}

// Request is an issued search, tagged with the generation it belongs to
type Request struct {
	Generation uint64
	Query      string
}

// Result is the outcome of a Request
type Result struct {
	Request  Request
	Snapshot domain.WeatherSnapshot
	Err      error
}

// Listener observes every committed state transition
type Listener func(domain.InteractionState)

// Controller owns the InteractionState of one session
type Controller struct {
	mu         sync.Mutex
	fetcher    Fetcher
	bus        eventbus.EventBus
	state      domain.InteractionState
	generation uint64
	focus      bool
	listeners  []Listener
}

// NewController creates a controller in the Idle state. bus may be nil.
func NewController(fetcher Fetcher, bus eventbus.EventBus) *Controller {
	return &Controller{
		fetcher: fetcher,
		bus:     bus,
		state:   domain.Idle(),
	}
}

// Subscribe registers fn to be called synchronously after every transition.
// fn runs with the controller locked and must not call back into it.
func (c *Controller) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns the current state
func (c *Controller) State() domain.InteractionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Generation returns the generation of the latest submission
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// FocusRequested reports whether the input field should receive focus
func (c *Controller) FocusRequested() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focus
}

// ConsumeFocusRequest returns and clears the focus request
func (c *Controller) ConsumeFocusRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := c.focus
	c.focus = false
	return f
}

// Submit runs a full search for rawInput and returns the resulting state.
// It blocks until the data source answers.
func (c *Controller) Submit(ctx context.Context, rawInput string) domain.InteractionState {
	req, ok := c.Begin(rawInput)
	if !ok {
		return c.State()
	}
	c.Complete(c.Fetch(ctx, req))
	return c.State()
}

// Begin validates rawInput and, if it is not blank, enters Loading and returns
// the request to issue. A blank input ends in Failure without a request.
func (c *Controller) Begin(rawInput string) (Request, bool) {
	query := strings.TrimSpace(rawInput)

	c.mu.Lock()
	// Any submission supersedes requests still in flight
	c.generation++
	if query == "" {
		c.focus = true
		c.commitLocked(domain.Failure("", domain.ErrorKindEmptyQuery, domain.MessageEmptyQuery))
		c.mu.Unlock()
		c.publish(eventbus.SearchRejectedEvent{RawInput: rawInput})
		return Request{}, false
	}

	req := Request{Generation: c.generation, Query: query}
	c.focus = false
	c.commitLocked(domain.Loading(query))
	c.mu.Unlock()

	c.publish(eventbus.SearchStartedEvent{Generation: req.Generation, Query: query})
	return req, true
}

// Fetch calls the data source for req. It does not touch the state, so it may
// run outside the goroutine that owns the controller.
func (c *Controller) Fetch(ctx context.Context, req Request) Result {
	snap, err := c.fetcher.FetchCurrentConditions(ctx, req.Query)
	return Result{Request: req, Snapshot: snap, Err: err}
}

// Complete applies res if it belongs to the latest request and reports whether
// it did. Either way the loading indicator of res's request is gone afterwards.
func (c *Controller) Complete(res Result) bool {
	c.mu.Lock()
	latest := c.generation
	if res.Request.Generation != latest {
		c.mu.Unlock()
		log.Printf("Discarding result for %q (generation %d, latest %d)", res.Request.Query, res.Request.Generation, latest)
		c.publish(eventbus.SearchDiscardedEvent{Generation: res.Request.Generation, Latest: latest, Query: res.Request.Query})
		return false
	}

	if res.Err != nil {
		kind := domain.ClassifyError(res.Err)
		c.commitLocked(domain.Failure(res.Request.Query, kind, domain.MessageFetchFailed))
		c.mu.Unlock()
		log.Printf("Error fetching weather data for %q (%s): %v", res.Request.Query, kind, res.Err)
		c.publish(eventbus.SearchFailedEvent{Generation: res.Request.Generation, Query: res.Request.Query, Kind: kind, Err: res.Err})
		return true
	}

	c.commitLocked(domain.Success(res.Request.Query, res.Snapshot))
	c.mu.Unlock()
	c.publish(eventbus.SearchSucceededEvent{Generation: res.Request.Generation, Query: res.Request.Query, Location: res.Snapshot.Name})
	return true
}

// commitLocked replaces the state and notifies listeners. c.mu must be held.
func (c *Controller) commitLocked(s domain.InteractionState) {
	c.state = s
	for _, fn := range c.listeners {
		fn(s)
	}
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
