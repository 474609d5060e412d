package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/paologalligit/seat-helper/constant"
	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Headless bool
	Timeout  time.Duration
}

// Page is a booking page opened in a headless Chromium
type Page struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

const (
	seatIdsScript = `([selector, attr]) => Array.from(document.querySelectorAll(selector))
		.map(el => el.getAttribute(attr))
		.filter(id => id !== null)`
	setTitleScript = `([selector, attr, id, text]) => {
		let n = 0;
		document.querySelectorAll(selector).forEach(el => {
			if (el.getAttribute(attr) === id) { el.title = text; n++; }
		});
		return n;
	}`
)

func Open(url string, opts Options) (*Page, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 45 * time.Second
	}
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not launch playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	p := &Page{pw: pw, browser: browser}
	browserCtx, err := browser.NewContext()
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	p.page, err = browserCtx.NewPage()
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	log.Printf("[BROWSER] Opening %s", url)
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{Timeout: playwright.Float(float64(opts.Timeout.Milliseconds()))}); err != nil {
		p.Close()
		return nil, fmt.Errorf("could not navigate to %s: %w", url, err)
	}

	// Wait for the seat plan to render; a timeout here is not fatal
	if err := p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(10000),
	}); err != nil {
		log.Printf("[BROWSER] Page did not settle: %v", err)
	}
	return p, nil
}

// Address returns the current location, fragment included
func (p *Page) Address(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := p.page.Evaluate(`() => location.href`)
	if err != nil {
		return "", fmt.Errorf("could not read location: %w", err)
	}
	address, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("location is %T, not a string", v)
	}
	return address, nil
}

// SeatIds lists the data ids of every seat element on the page
func (p *Page) SeatIds(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := p.page.Evaluate(seatIdsScript, []any{constant.SEAT_SELECTOR, constant.SEAT_ID_ATTR})
	if err != nil {
		return nil, fmt.Errorf("could not list seats: %w", err)
	}
	return toStrings(v)
}

// SetTitle writes text as the native tooltip of the seat with dataId
func (p *Page) SetTitle(ctx context.Context, dataId, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v, err := p.page.Evaluate(setTitleScript, []any{constant.SEAT_SELECTOR, constant.SEAT_ID_ATTR, dataId, text})
	if err != nil {
		return fmt.Errorf("could not set title: %w", err)
	}
	switch n := v.(type) {
	case int:
		if n > 0 {
			return nil
		}
	case float64:
		if n > 0 {
			return nil
		}
	default:
		return nil
	}
	return fmt.Errorf("no seat element with %s=%q", constant.SEAT_ID_ATTR, dataId)
}

func (p *Page) Close() error {
	var errs []error
	if p.browser != nil {
		errs = append(errs, p.browser.Close())
	}
	if p.pw != nil {
		errs = append(errs, p.pw.Stop())
	}
	return errors.Join(errs...)
}

// toStrings converts an Evaluate result holding a JS string array
func toStrings(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("item %d is %T, not a string", i, item)
		}
		out = append(out, s)
	}
	return out, nil
}
