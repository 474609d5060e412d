package seatmap

import (
	"github.com/paologalligit/seat-helper/entities"
)

type SeatEntry struct {
	Name string
}

// RowEntry is a row of a built SeatMap. Its seats are only reachable through
// Seat so a built map cannot be changed by its readers.
type RowEntry struct {
	Name  string
	seats map[int]SeatEntry
}

// Seat returns the seat stored under the given column index
func (r RowEntry) Seat(index int) (SeatEntry, bool) {
	seat, ok := r.seats[index]
	return seat, ok
}

// Len returns the number of seats in the row
func (r RowEntry) Len() int {
	return len(r.seats)
}

// SeatMap is the normalised row-index -> seat-index lookup. It is never
// mutated once Build returns.
type SeatMap struct {
	rows map[int]*RowEntry
}

// Row returns the row stored under the given index
func (m *SeatMap) Row(index int) (RowEntry, bool) {
	row, ok := m.rows[index]
	if !ok {
		return RowEntry{}, false
	}
	return *row, true
}

func (m *SeatMap) Len() int {
	return len(m.rows)
}

// Seats returns the total number of seats across all rows
func (m *SeatMap) Seats() int {
	total := 0
	for _, row := range m.rows {
		total += len(row.seats)
	}
	return total
}

// Build normalises a seat plan. Rows are keyed by the row index reported by
// their seats, so a physical row split across areas lands in one bucket.
// Rows without seats never get an entry.
func Build(plan *entities.SeatPlan) *SeatMap {
	m := &SeatMap{rows: make(map[int]*RowEntry)}
	if plan == nil || plan.SeatLayoutData == nil {
		return m
	}
	for _, area := range plan.SeatLayoutData.Areas {
		for _, row := range area.Rows {
			for _, seat := range row.Seats {
				if seat.Position == nil {
					continue
				}
				entry, ok := m.rows[seat.Position.RowIndex]
				if !ok {
					entry = &RowEntry{seats: make(map[int]SeatEntry)}
					m.rows[seat.Position.RowIndex] = entry
				}
				entry.Name = row.PhysicalName
				entry.seats[seat.Position.ColumnIndex] = SeatEntry{Name: string(seat.Id)}
			}
		}
	}
	return m
}
