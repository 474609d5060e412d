package seatmap

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type State int

const (
	StateUninitialized State = iota
	StatePending
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// AddressFunc returns the current page address. It is read again on every
// build attempt so a retry after a failure sees the latest address.
type AddressFunc func(ctx context.Context) (string, error)

// StaticAddress returns an AddressFunc that always yields address
func StaticAddress(address string) AddressFunc {
	return func(context.Context) (string, error) {
		return address, nil
	}
}

// Cache holds the seat map of the current page. The map is built lazily on
// the first Get, concurrent callers share the in-flight build and failures
// are not remembered.
type Cache struct {
	address AddressFunc
	fetcher LayoutFetcher

	mu      sync.Mutex
	state   State
	seatMap *SeatMap
	lastErr error

	group singleflight.Group
}

func NewCache(address AddressFunc, fetcher LayoutFetcher) *Cache {
	return &Cache{
		address: address,
		fetcher: fetcher,
	}
}

// Get returns the seat map, building it if needed. A caller whose context
// ends while the build is pending gets the context error; the build itself
// keeps running for the other callers.
func (c *Cache) Get(ctx context.Context) (*SeatMap, error) {
	if m := c.ready(); m != nil {
		return m, nil
	}

	ch := c.group.DoChan("seatmap", func() (any, error) {
		return c.build(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*SeatMap), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// State reports the lifecycle state and the error of the last failed build
func (c *Cache) State() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.lastErr
}

func (c *Cache) ready() *SeatMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seatMap
}

func (c *Cache) build(ctx context.Context) (*SeatMap, error) {
	c.mu.Lock()
	if c.seatMap != nil {
		m := c.seatMap
		c.mu.Unlock()
		return m, nil
	}
	c.state = StatePending
	c.mu.Unlock()

	m, err := c.locateAndFetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		log.Printf("[SEATMAP] Build failed, next lookup will retry: %v", err)
		return nil, err
	}
	c.seatMap = m
	c.state = StateReady
	c.lastErr = nil
	return m, nil
}

func (c *Cache) locateAndFetch(ctx context.Context) (*SeatMap, error) {
	start := time.Now()
	address, err := c.address(ctx)
	if err != nil {
		return nil, newError(KindMalformedAddress, err, "cannot read page address")
	}
	ref, err := Locate(address)
	if err != nil {
		return nil, err
	}
	plan, err := c.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	m := Build(plan)
	if dropped := plan.CountSeats() - m.Seats(); dropped > 0 {
		log.Printf("[SEATMAP] %d seats of %s/%s have no position or share an index and cannot be resolved", dropped, ref.Cinema, ref.Session)
	}
	log.Printf("[SEATMAP] Seat map for %s/%s ready: %d rows, %d seats in %s", ref.Cinema, ref.Session, m.Len(), m.Seats(), time.Since(start).Round(time.Millisecond))
	return m, nil
}
