package seatmap

import (
	"context"
	"errors"
	"testing"

	"github.com/paologalligit/seat-helper/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockSeatMapSource struct {
	seatMap *SeatMap
	err     error
	calls   int
}

func (m *MockSeatMapSource) Get(ctx context.Context) (*SeatMap, error) {
	m.calls++
	return m.seatMap, m.err
}

func rowC() *SeatMap {
	return &SeatMap{rows: map[int]*RowEntry{
		3: {Name: "C", seats: map[int]SeatEntry{7: {Name: "C7"}}},
	}}
}

func TestParseDataId(t *testing.T) {
	cases := []struct {
		name        string
		dataId      string
		expectsErr  bool
		expectsRow  int
		expectsSeat int
	}{
		{name: "valid", dataId: "1-3-7-2", expectsRow: 3, expectsSeat: 7},
		{name: "multi digit", dataId: "0-12-104-99", expectsRow: 12, expectsSeat: 104},
		{name: "not numeric", dataId: "bad-id", expectsErr: true},
		{name: "three fields", dataId: "1-3-7", expectsErr: true},
		{name: "five fields", dataId: "1-3-7-2-0", expectsErr: true},
		{name: "empty", dataId: "", expectsErr: true},
		{name: "overflow", dataId: "1-99999999999999999999-7-2", expectsErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row, seat, err := ParseDataId(tc.dataId)
			if tc.expectsErr {
				assert.ErrorIs(t, err, ErrUnrecognizedId)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectsRow, row)
			assert.Equal(t, tc.expectsSeat, seat)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	source := &MockSeatMapSource{seatMap: rowC()}
	r := NewResolver(source)

	info, err := r.Resolve(context.Background(), "1-3-7-2")
	require.NoError(t, err)
	assert.Equal(t, entities.SeatInfo{Row: "C", Seat: "C7"}, info)
}

func TestResolver_RowNotFound(t *testing.T) {
	r := NewResolver(&MockSeatMapSource{seatMap: rowC()})

	_, err := r.Resolve(context.Background(), "1-9-7-2")
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.Equal(t, KindRowNotFound, KindOf(err))
}

func TestResolver_SeatNotFound(t *testing.T) {
	r := NewResolver(&MockSeatMapSource{seatMap: rowC()})

	_, err := r.Resolve(context.Background(), "1-3-8-2")
	assert.ErrorIs(t, err, ErrSeatNotFound)
	assert.Contains(t, err.Error(), `"C"`)
	assert.Contains(t, err.Error(), "index 3")
}

func TestResolver_UnrecognizedIdSkipsSeatMap(t *testing.T) {
	source := &MockSeatMapSource{seatMap: rowC()}
	r := NewResolver(source)

	_, err := r.Resolve(context.Background(), "bad-id")
	assert.ErrorIs(t, err, ErrUnrecognizedId)
	assert.Equal(t, 0, source.calls)
}

func TestResolver_UnrecognizedIdNeverFetches(t *testing.T) {
	fetcher := &MockLayoutFetcher{plan: loadSeatPlan(t, SEAT_PLAN)}
	r := NewResolver(NewCache(StaticAddress("#/BAL/S12345"), fetcher))

	_, err := r.Resolve(context.Background(), "bad-id")
	assert.ErrorIs(t, err, ErrUnrecognizedId)
	assert.Equal(t, int32(0), fetcher.calls.Load())
}

func TestResolver_PropagatesSourceError(t *testing.T) {
	cause := &Error{Kind: KindLayoutUnavailable, Msg: "timeout"}
	r := NewResolver(&MockSeatMapSource{err: cause})

	_, err := r.Resolve(context.Background(), "1-3-7-2")
	assert.True(t, errors.Is(err, ErrLayoutUnavailable))
}
