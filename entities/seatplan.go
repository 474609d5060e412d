package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SeatPlan is the payload of the Vista seat-plan endpoint
type SeatPlan struct {
	SeatLayoutData *SeatLayoutData `json:"SeatLayoutData"`
}

type SeatLayoutData struct {
	Areas []Area `json:"Areas"`
}

type Area struct {
	Rows []Row `json:"Rows"`
}

type Row struct {
	PhysicalName string `json:"PhysicalName"`
	Seats        []Seat `json:"Seats"`
}

// Seat is a single seat of a row. Position can be nil for malformed entries
type Seat struct {
	Id       SeatId    `json:"Id"`
	Position *Position `json:"Position"`
}

type Position struct {
	RowIndex    int `json:"RowIndex"`
	ColumnIndex int `json:"ColumnIndex"`
}

// SeatId is the opaque display label of a seat. The service sends it as a
// string, older sessions sometimes as a bare number.
type SeatId string

func (s *SeatId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SeatId(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("seat id is neither string nor number: %s", data)
	}
	*s = SeatId(num.String())
	return nil
}

// CountSeats returns the number of seats in the payload, positioned or not
func (p *SeatPlan) CountSeats() int {
	if p == nil || p.SeatLayoutData == nil {
		return 0
	}
	total := 0
	for _, area := range p.SeatLayoutData.Areas {
		for _, row := range area.Rows {
			total += len(row.Seats)
		}
	}
	return total
}
