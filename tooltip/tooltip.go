package tooltip

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/paologalligit/seat-helper/entities"
	"github.com/paologalligit/seat-helper/persistence"
	"github.com/paologalligit/seat-helper/seatmap"
)

type SeatResolver interface {
	Resolve(ctx context.Context, dataId string) (entities.SeatInfo, error)
}

// Target is what the pointer is over. DataId is empty outside seat elements.
type Target struct {
	DataId string
	X, Y   float64
}

// HoverState is owned by the event loop and threaded through every call.
// Generation changes whenever the hovered seat changes.
type HoverState struct {
	DataId     string
	Generation uint64
}

type Tooltip struct {
	Visible bool
	Text    string
	X, Y    float64
}

type Viewport struct {
	Width, Height float64
}

// Result is a finished lookup, tagged with the generation it was started for
type Result struct {
	Generation uint64
	Target     Target
	Info       entities.SeatInfo
	Err        error
}

type Options struct {
	Resolver SeatResolver
	Sink     persistence.Persistence // optional
	Session  entities.SessionRef     // recorded with each lookup
	Viewport Viewport
	Offset   float64
	Width    float64 // estimated tooltip box
	Height   float64
	Now      func() time.Time
}

type Handler struct {
	opts Options
}

func NewHandler(opts Options) *Handler {
	if opts.Offset == 0 {
		opts.Offset = 12
	}
	if opts.Width == 0 {
		opts.Width = 140
	}
	if opts.Height == 0 {
		opts.Height = 28
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{opts: opts}
}

// Enter returns the hover state after the pointer moved onto target
func Enter(state HoverState, target Target) HoverState {
	if state.DataId == target.DataId {
		return state
	}
	return HoverState{DataId: target.DataId, Generation: state.Generation + 1}
}

// Lookup resolves the seat under target for the given hover state. It may
// block on the first seat-map fetch, so event loops usually run it in a
// goroutine and hand the result to Settle.
func (h *Handler) Lookup(ctx context.Context, hover HoverState, target Target) Result {
	res := Result{Generation: hover.Generation, Target: target}
	if target.DataId == "" {
		return res
	}
	res.Info, res.Err = h.opts.Resolver.Resolve(ctx, target.DataId)
	h.record(ctx, target.DataId, res.Info, res.Err)
	return res
}

// Settle turns a lookup result into a tooltip. The boolean is false when the
// pointer has since moved to another seat and the result must be dropped.
func (h *Handler) Settle(current HoverState, res Result) (Tooltip, bool) {
	if current.Generation != res.Generation {
		return Tooltip{}, false
	}
	if res.Target.DataId == "" || res.Err != nil {
		return Tooltip{}, true
	}
	text := Text(res.Info)
	x, y := Place(res.Target.X, res.Target.Y, h.opts.Width, h.opts.Height, h.opts.Offset, h.opts.Viewport)
	return Tooltip{Visible: true, Text: text, X: x, Y: y}, true
}

// PointerMove handles a pointer event synchronously
func (h *Handler) PointerMove(ctx context.Context, state HoverState, target Target) (HoverState, Tooltip) {
	next := Enter(state, target)
	tip, _ := h.Settle(next, h.Lookup(ctx, next, target))
	return next, tip
}

func (h *Handler) record(ctx context.Context, dataId string, info entities.SeatInfo, err error) {
	entry := entities.LookupLogEntry{
		Cinema:   h.opts.Session.Cinema,
		Session:  h.opts.Session.Session,
		DataId:   dataId,
		Row:      info.Row,
		Seat:     info.Seat,
		Outcome:  "ok",
		LoggedAt: h.opts.Now(),
	}
	if err != nil {
		entry.Outcome = seatmap.KindOf(err).String()
		entry.Error = err.Error()
		log.Printf("[TOOLTIP] Hiding tooltip for %s: %v", dataId, err)
	}
	if h.opts.Sink == nil {
		return
	}
	if werr := h.opts.Sink.WriteLookup(ctx, entry); werr != nil {
		log.Printf("[TOOLTIP] Failed to record lookup for %s: %v", dataId, werr)
	}
}

func Text(info entities.SeatInfo) string {
	return fmt.Sprintf("Row %s, Seat %s", info.Row, info.Seat)
}

// Place puts the box below-right of the pointer, flipping to the other side
// when it would leave the viewport. A zero viewport disables clamping.
func Place(x, y, width, height, offset float64, vp Viewport) (float64, float64) {
	px, py := x+offset, y+offset
	if vp.Width > 0 && px+width > vp.Width {
		px = max(x-offset-width, 0)
	}
	if vp.Height > 0 && py+height > vp.Height {
		py = max(y-offset-height, 0)
	}
	return px, py
}
