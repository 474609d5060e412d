package tooltip

import (
	"context"
	"fmt"
	"log"

	"github.com/paologalligit/seat-helper/entities"
	"github.com/paologalligit/seat-helper/team"
)

// SeatPage is the DOM side of a booking page
type SeatPage interface {
	SeatIds(ctx context.Context) ([]string, error)
	SetTitle(ctx context.Context, dataId, text string) error
}

type Report struct {
	Outcomes []team.Outcome[string, entities.SeatInfo]
	Titled   int
	// resolved seats whose title could not be written
	Untitled []string
}

func (r Report) Failed() int {
	failed := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed++
		}
	}
	return failed
}

// Annotate resolves every seat on the page and writes the tooltip text onto
// the seat elements. Seats that fail to resolve or whose title cannot be
// written are left untouched and annotation carries on with the rest.
func Annotate(ctx context.Context, page SeatPage, h *Handler, workers int) (Report, error) {
	ids, err := page.SeatIds(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("error listing seats: %w", err)
	}
	log.Printf("[TOOLTIP] Annotating %d seats with %d workers", len(ids), workers)

	resolveTeam := team.Team[string, entities.SeatInfo]{
		WorkerCount: workers,
		Worker: func(dataId string) (entities.SeatInfo, error) {
			res := h.Lookup(ctx, HoverState{DataId: dataId}, Target{DataId: dataId})
			return res.Info, res.Err
		},
	}
	report := Report{Outcomes: resolveTeam.Run(ids)}

	for _, o := range report.Outcomes {
		if o.Err != nil {
			continue
		}
		if err := page.SetTitle(ctx, o.Job, Text(o.Result)); err != nil {
			log.Printf("[TOOLTIP] Could not set title on %s: %v", o.Job, err)
			report.Untitled = append(report.Untitled, o.Job)
			continue
		}
		report.Titled++
	}
	return report, nil
}
