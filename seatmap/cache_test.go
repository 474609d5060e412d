package seatmap

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/paologalligit/seat-helper/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLayoutFetcher counts calls and optionally blocks until released
type MockLayoutFetcher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	plan    *entities.SeatPlan
	errs    []error
	mu      sync.Mutex
}

func (m *MockLayoutFetcher) Fetch(ctx context.Context, ref entities.SessionRef) (*entities.SeatPlan, error) {
	n := m.calls.Add(1)
	if m.started != nil && n == 1 {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return m.plan, nil
}

func TestCache_GetBuildsOnce(t *testing.T) {
	fetcher := &MockLayoutFetcher{plan: loadSeatPlan(t, SEAT_PLAN)}
	cache := NewCache(StaticAddress("#/BAL/S12345"), fetcher)

	state, _ := cache.State()
	assert.Equal(t, StateUninitialized, state)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), fetcher.calls.Load())
	state, lastErr := cache.State()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, lastErr)
}

func TestCache_ConcurrentGetsShareOneFetch(t *testing.T) {
	fetcher := &MockLayoutFetcher{
		plan:    loadSeatPlan(t, SEAT_PLAN),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewCache(StaticAddress("#/BAL/S12345"), fetcher)

	const callers = 10
	results := make([]*SeatMap, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			m, err := cache.Get(context.Background())
			assert.NoError(t, err)
			results[idx] = m
		}(i)
	}

	<-fetcher.started
	state, _ := cache.State()
	assert.Equal(t, StatePending, state)
	time.Sleep(50 * time.Millisecond)
	close(fetcher.release)
	wg.Wait()

	assert.Equal(t, int32(1), fetcher.calls.Load())
	for _, m := range results {
		assert.Same(t, results[0], m)
	}
}

func TestCache_FailureIsNotMemoised(t *testing.T) {
	fetcher := &MockLayoutFetcher{
		plan: loadSeatPlan(t, SEAT_PLAN),
		errs: []error{&Error{Kind: KindLayoutUnavailable, Msg: "503"}},
	}
	cache := NewCache(StaticAddress("#/BAL/S12345"), fetcher)

	m, err := cache.Get(context.Background())
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrLayoutUnavailable)
	state, lastErr := cache.State()
	assert.Equal(t, StateFailed, state)
	assert.ErrorIs(t, lastErr, ErrLayoutUnavailable)

	m, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, int32(2), fetcher.calls.Load())
	state, _ = cache.State()
	assert.Equal(t, StateReady, state)
}

func TestCache_MalformedAddressSkipsFetch(t *testing.T) {
	fetcher := &MockLayoutFetcher{plan: loadSeatPlan(t, SEAT_PLAN)}
	address := "https://pathe.ch/vistafr/"
	cache := NewCache(func(context.Context) (string, error) { return address, nil }, fetcher)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrMalformedAddress)
	assert.Equal(t, int32(0), fetcher.calls.Load())

	// the address is read again on retry
	address = "https://pathe.ch/vistafr/#/BAL/S12345"
	m, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestCache_AddressSourceError(t *testing.T) {
	fetcher := &MockLayoutFetcher{}
	cache := NewCache(func(context.Context) (string, error) { return "", errors.New("page closed") }, fetcher)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrMalformedAddress)
	assert.Equal(t, int32(0), fetcher.calls.Load())
}

func TestCache_CallerCancellationDoesNotCancelFetch(t *testing.T) {
	fetcher := &MockLayoutFetcher{
		plan:    loadSeatPlan(t, SEAT_PLAN),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewCache(StaticAddress("#/BAL/S12345"), fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := cache.Get(ctx)
		errCh <- err
	}()

	<-fetcher.started
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(fetcher.release)
	m, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}
