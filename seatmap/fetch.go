package seatmap

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/paologalligit/seat-helper/client"
	"github.com/paologalligit/seat-helper/constant"
	"github.com/paologalligit/seat-helper/entities"
)

// LayoutFetcher retrieves the raw seat plan of a session
type LayoutFetcher interface {
	Fetch(ctx context.Context, ref entities.SessionRef) (*entities.SeatPlan, error)
}

type Fetcher struct {
	client      client.SeatPlanCaller
	urlTemplate string
}

// NewFetcher returns a fetcher for the given url template, which takes the
// cinema and session as its two %s verbs. An empty template means the
// production endpoint.
func NewFetcher(c client.SeatPlanCaller, urlTemplate string) *Fetcher {
	if urlTemplate == "" {
		urlTemplate = constant.SEAT_PLAN_URL
	}
	return &Fetcher{client: c, urlTemplate: urlTemplate}
}

func (f *Fetcher) URL(ref entities.SessionRef) string {
	return fmt.Sprintf(f.urlTemplate, url.PathEscape(ref.Cinema), url.PathEscape(ref.Session))
}

// Fetch issues exactly one request; there are no retries
func (f *Fetcher) Fetch(ctx context.Context, ref entities.SessionRef) (*entities.SeatPlan, error) {
	target := f.URL(ref)
	log.Printf("[SEATMAP] Fetching seat plan for cinema %s session %s", ref.Cinema, ref.Session)
	plan, err := f.client.CallSeatPlan(ctx, target)
	if err != nil {
		return nil, newError(KindLayoutUnavailable, err, "cinema %s session %s", ref.Cinema, ref.Session)
	}
	if plan == nil || plan.SeatLayoutData == nil {
		return nil, newError(KindLayoutUnavailable, nil, "cinema %s session %s: payload has no SeatLayoutData", ref.Cinema, ref.Session)
	}
	return plan, nil
}
