// Package pipeline composes the price extractor, the display formatter and
// the board client, and converts every failure into the caller-facing
// tagged result. No error escapes this boundary.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"SpotBoard/internal/board"
	"SpotBoard/internal/display"
	"SpotBoard/internal/model"
	"SpotBoard/internal/recorder"
	"SpotBoard/internal/scraper"
)

// PriceSource yields a full snapshot or a typed extraction error.
type PriceSource interface {
	FetchPrices(ctx context.Context) (*model.PriceSnapshot, error)
}

const defaultSendRetries = 3

// Orchestrator runs the board's operations end to end.
type Orchestrator struct {
	Source   PriceSource
	Board    board.Sender
	Recorder recorder.Recorder
	Ctx      context.Context

	// SendRetries and RetryBase shape the board-send backoff.
	SendRetries int
	RetryBase   time.Duration
}

// NewOrchestrator wires the pipeline together.
func NewOrchestrator(ctx context.Context, source PriceSource, sender board.Sender, rec recorder.Recorder) *Orchestrator {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Orchestrator{
		Source:      source,
		Board:       sender,
		Recorder:    rec,
		Ctx:         ctx,
		SendRetries: defaultSendRetries,
		RetryBase:   time.Second,
	}
}

// DisplayMetalsPrices runs one extract → format → sanitize → send pass.
//
// On a source timeout the fixed stale-data notice is pushed to the board
// itself (operators glancing at the hardware must not trust old numbers)
// and the caller still sees an error result. On any other extraction
// failure the board keeps its last content.
func (o *Orchestrator) DisplayMetalsPrices() model.Result {
	snap, err := o.Source.FetchPrices(o.Ctx)
	if err != nil {
		if scraper.IsTimeout(err) {
			if sendErr := o.trySend(scraper.TimeoutMessage); sendErr != nil {
				log.Printf("[ERROR] send timeout notice: %v", sendErr)
			}
			o.recordEvent(recorder.EventTimeoutNotice, scraper.TimeoutMessage, model.StatusError)
			return model.Error(scraper.TimeoutMessage)
		}
		return model.Error(err.Error())
	}

	text := display.SanitizeLines(display.FormatPrices(snap))
	if err := o.trySend(text); err != nil {
		o.recordEvent(recorder.EventMetals, text, model.StatusError)
		return model.Error(fmt.Sprintf("send to board: %v", err))
	}

	if err := o.Recorder.RecordSnapshot(snap); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
	o.recordEvent(recorder.EventMetals, text, model.StatusSuccess)

	summary := fmt.Sprintf("Gold bid %s ask %s, Silver bid %s ask %s",
		snap.Gold.Bid, snap.Gold.Ask, snap.Silver.Bid, snap.Silver.Ask)
	return model.Success(summary, snap)
}

// SendMessage sanitizes and sends arbitrary text to the board.
func (o *Orchestrator) SendMessage(text string) model.Result {
	if strings.TrimSpace(text) == "" {
		return model.Error("message is empty")
	}
	clean := display.SanitizeLines(text)
	if err := o.trySend(clean); err != nil {
		o.recordEvent(recorder.EventManual, clean, model.StatusError)
		return model.Error(fmt.Sprintf("send to board: %v", err))
	}
	o.recordEvent(recorder.EventManual, clean, model.StatusSuccess)
	return model.Success(fmt.Sprintf("Message sent: %s", truncate(clean, 50)), nil)
}

// ReadBoard returns the board's current tile grid unchanged.
func (o *Orchestrator) ReadBoard() model.Result {
	grid, err := o.Board.Read()
	if err != nil {
		return model.Error(fmt.Sprintf("read board: %v", err))
	}
	return model.Success("Board read successfully", grid)
}

// RunColorTest pushes the full-grid color diagnostic pattern.
func (o *Orchestrator) RunColorTest() model.Result {
	grid := display.ColorTestGrid()
	if err := o.Board.SendRaw(grid); err != nil {
		o.recordEvent(recorder.EventColorTest, "", model.StatusError)
		return model.Error(fmt.Sprintf("send color test: %v", err))
	}
	o.recordEvent(recorder.EventColorTest, "", model.StatusSuccess)
	return model.Success("Color test pattern sent", grid)
}

// trySend sends text to the board with exponential backoff.
func (o *Orchestrator) trySend(text string) error {
	retries := o.SendRetries
	base := o.RetryBase
	if base <= 0 {
		base = time.Second
	}
	var lastErr error
	for i := 0; i <= retries; i++ {
		if err := o.Board.SendText(text); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * base
			log.Printf("[WARN] board send failed (attempt %d/%d): %v, retrying in %v", i+1, retries+1, err, backoff)
			select {
			case <-o.Ctx.Done():
				return o.Ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d attempts exhausted: %w", retries+1, lastErr)
}

func (o *Orchestrator) recordEvent(kind, message, status string) {
	err := o.Recorder.RecordBoardEvent(&recorder.BoardEvent{Kind: kind, Message: message, Status: status})
	if err != nil {
		log.Printf("[ERROR] record board event: %v", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
