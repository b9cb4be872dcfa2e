// Package board talks to the split-flap display over its local network API.
package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"SpotBoard/internal/display"
)

// Sender is what the pipeline needs from the physical board: plain text
// laid out by the device firmware, or a raw tile grid for exact control.
type Sender interface {
	SendText(text string) error
	SendRaw(grid display.Grid) error
	Read() (display.Grid, error)
}

const (
	localAPIPort   = 7100
	localAPIHeader = "X-Vestaboard-Local-Api-Key"
	clientTimeout  = 10 * time.Second
)

// Client is the local-API implementation of Sender.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient creates a client for the board at the given LAN address.
func NewClient(ip, apiKey string) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("http://%s:%d/local-api/message", ip, localAPIPort),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: clientTimeout},
	}
}

// SendText posts a plain text message; the device firmware handles layout.
func (c *Client) SendText(text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("marshal text payload: %w", err)
	}
	return c.post(payload)
}

// SendRaw posts a full 6x22 tile grid for exact cell-level control.
func (c *Client) SendRaw(grid display.Grid) error {
	payload, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("marshal grid payload: %w", err)
	}
	return c.post(payload)
}

// Read returns the grid currently shown on the board, unchanged.
func (c *Client) Read() (display.Grid, error) {
	var grid display.Grid

	req, err := http.NewRequest(http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return grid, err
	}
	req.Header.Set(localAPIHeader, c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return grid, fmt.Errorf("read board: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return grid, fmt.Errorf("read board body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return grid, fmt.Errorf("board API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	// Firmware revisions answer with either the bare grid or a
	// {"message": grid} wrapper.
	if err := json.Unmarshal(body, &grid); err == nil {
		return grid, nil
	}
	var wrapped struct {
		Message display.Grid `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return grid, fmt.Errorf("decode board state: %w", err)
	}
	return wrapped.Message, nil
}

// TestConnection probes the board by reading its current state.
func (c *Client) TestConnection() error {
	if _, err := c.Read(); err != nil {
		return fmt.Errorf("board connection test: %w", err)
	}
	return nil
}

func (c *Client) post(payload []byte) error {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set(localAPIHeader, c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("send to board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("board API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}
