// Package scraper fetches precious-metal spot prices from the source site's
// chart pages. One attempt per call; retry policy belongs to the scheduler.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"SpotBoard/internal/model"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Source timestamps are unreliable, so quotes are stamped with local
// capture time in these layouts.
const (
	dateLayout = "Jan 02, 2006"
	timeLayout = "03:04 PM"
)

// DefaultFetchTimeout bounds one page fetch.
const DefaultFetchTimeout = 15 * time.Second

// Scraper fetches and extracts prices for the tracked metals.
type Scraper struct {
	Client    *http.Client
	Strategy  Strategy
	GoldURL   string
	SilverURL string

	// Now is the capture clock, overridable in tests.
	Now func() time.Time
}

// New creates a Scraper using the given parse strategy and per-fetch timeout.
func New(strategy Strategy, goldURL, silverURL string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Scraper{
		Client:    &http.Client{Timeout: timeout},
		Strategy:  strategy,
		GoldURL:   goldURL,
		SilverURL: silverURL,
		Now:       time.Now,
	}
}

// FetchPrices captures both metals together. Either both quotes come back
// fully populated or the call fails with an *ExtractionError; no partial
// snapshot is ever returned.
func (s *Scraper) FetchPrices(ctx context.Context) (*model.PriceSnapshot, error) {
	gold, err := s.fetchMetal(ctx, "Gold", s.GoldURL)
	if err != nil {
		return nil, err
	}
	silver, err := s.fetchMetal(ctx, "Silver", s.SilverURL)
	if err != nil {
		return nil, err
	}
	return &model.PriceSnapshot{Gold: *gold, Silver: *silver}, nil
}

func (s *Scraper) fetchMetal(ctx context.Context, metal, pageURL string) (*model.MetalQuote, error) {
	if pageURL == "" {
		return nil, &ExtractionError{Metal: metal, Err: fmt.Errorf("no source url configured")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &ExtractionError{Metal: metal, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, s.classify(metal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ExtractionError{Metal: metal, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, s.classify(metal, err)
	}

	bid, ask, err := s.Strategy.Extract(page)
	if err != nil {
		return nil, &ExtractionError{Metal: metal, Err: err}
	}

	now := s.Now()
	return &model.MetalQuote{
		Metal: metal,
		Bid:   bid,
		Ask:   ask,
		Date:  now.Format(dateLayout),
		Time:  now.Format(timeLayout),
	}, nil
}

// classify separates timeouts from everything else so callers can surface
// the stale-data notice on the physical display.
func (s *Scraper) classify(metal string, err error) *ExtractionError {
	var ne net.Error
	if (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return &ExtractionError{Kind: KindTimeout, Metal: metal, Err: err}
	}
	return &ExtractionError{Metal: metal, Err: err}
}
