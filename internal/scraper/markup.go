package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// MarkupStrategy scrapes the rendered markup directly: the bid sits in the
// page's headline h3, the ask in the small price block next to the "Ask"
// label. Fallback for when the embedded page data moves.
type MarkupStrategy struct{}

func (MarkupStrategy) Name() string { return "markup" }

func (MarkupStrategy) Extract(page []byte) (string, string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", "", fmt.Errorf("parse page: %w", err)
	}

	bidNode := findNode(doc, func(n *html.Node) bool {
		return isElement(n, "h3") && classContains(n, "text-4xl") && classContains(n, "font-bold")
	})
	if bidNode == nil {
		return "", "", fmt.Errorf("no bid headline in markup")
	}
	bid := cleanPrice(nodeText(bidNode))

	var ask string
	labels := findAll(doc, func(n *html.Node) bool {
		return isElement(n, "div") && classContains(n, "text-sm") && classContains(n, "font-normal")
	})
	for _, label := range labels {
		if !strings.Contains(nodeText(label), "Ask") || label.Parent == nil {
			continue
		}
		value := findNode(label.Parent, func(n *html.Node) bool {
			return isElement(n, "div") && classContains(n, "text-[19px]")
		})
		if value != nil {
			ask = cleanPrice(nodeText(value))
			break
		}
	}

	if bid == "" || ask == "" {
		return "", "", fmt.Errorf("bid/ask not found in markup")
	}
	return bid, ask, nil
}

func cleanPrice(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "$"))
}
