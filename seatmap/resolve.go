package seatmap

import (
	"context"
	"regexp"
	"strconv"

	"github.com/paologalligit/seat-helper/entities"
)

// <ignored>-<row>-<seat>-<ignored>
var dataIdRegex = regexp.MustCompile(`^([0-9]+)-([0-9]+)-([0-9]+)-([0-9]+)$`)

type SeatMapSource interface {
	Get(ctx context.Context) (*SeatMap, error)
}

type Resolver struct {
	source SeatMapSource
}

func NewResolver(source SeatMapSource) *Resolver {
	return &Resolver{source: source}
}

// ParseDataId extracts the row and seat index from a seat element identifier
func ParseDataId(dataId string) (row int, seat int, err error) {
	match := dataIdRegex.FindStringSubmatch(dataId)
	if match == nil {
		return 0, 0, newError(KindUnrecognizedId, nil, "%q", dataId)
	}
	row, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, newError(KindUnrecognizedId, err, "%q", dataId)
	}
	seat, err = strconv.Atoi(match[3])
	if err != nil {
		return 0, 0, newError(KindUnrecognizedId, err, "%q", dataId)
	}
	return row, seat, nil
}

// Resolve turns a seat element identifier into its row and seat labels. A
// malformed identifier is rejected before the seat map is requested.
func (r *Resolver) Resolve(ctx context.Context, dataId string) (entities.SeatInfo, error) {
	rowIndex, seatIndex, err := ParseDataId(dataId)
	if err != nil {
		return entities.SeatInfo{}, err
	}
	m, err := r.source.Get(ctx)
	if err != nil {
		return entities.SeatInfo{}, err
	}
	row, ok := m.Row(rowIndex)
	if !ok {
		return entities.SeatInfo{}, newError(KindRowNotFound, nil, "row %d", rowIndex)
	}
	seat, ok := row.Seat(seatIndex)
	if !ok {
		return entities.SeatInfo{}, newError(KindSeatNotFound, nil, "seat %d in row %q (index %d)", seatIndex, row.Name, rowIndex)
	}
	return entities.SeatInfo{Row: row.Name, Seat: seat.Name}, nil
}
