package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/paologalligit/seat-helper/entities"
)

type SeatPlanCaller interface {
	CallSeatPlan(ctx context.Context, url string) (*entities.SeatPlan, error)
}

// StatusError is returned when the seat-plan service answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type SeatPlanClient struct {
	client *http.Client
}

type Options struct {
	Timeout   time.Duration
	Transport http.RoundTripper
}

func New(options *Options) *SeatPlanClient {
	httpClient := &http.Client{}
	if options != nil {
		httpClient.Timeout = options.Timeout
		if options.Transport != nil {
			httpClient.Transport = options.Transport
		}
	}
	return &SeatPlanClient{client: httpClient}
}

// CallSeatPlan fetches the seat plan and unmarshals it into SeatPlan
func (c *SeatPlanClient) CallSeatPlan(ctx context.Context, url string) (*entities.SeatPlan, error) {
	body, err := c.doGet(ctx, url)
	if err != nil {
		return nil, err
	}
	var plan entities.SeatPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("error unmarshaling seat plan: %w", err)
	}
	return &plan, nil
}

// doGet is an internal helper for GET requests
func (c *SeatPlanClient) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()
	log.Printf("[CLIENT] GET %s -> %d in %s", url, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	return body, nil
}
