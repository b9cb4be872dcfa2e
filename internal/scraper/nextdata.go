package scraper

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

// NextDataStrategy reads the JSON state blob the source's Next.js frontend
// embeds in every chart page (<script id="__NEXT_DATA__">) and walks it to
// the metal quote results. Preferred: the blob survives styling changes
// that break markup lookups.
type NextDataStrategy struct{}

func (NextDataStrategy) Name() string { return "nextdata" }

func (NextDataStrategy) Extract(page []byte) (string, string, error) {
	raw, err := scriptByID(page, "__NEXT_DATA__")
	if err != nil {
		return "", "", err
	}

	queries := gjson.GetBytes(raw, "props.pageProps.dehydratedState.queries")
	if !queries.IsArray() {
		return "", "", fmt.Errorf("no dehydrated queries in page data")
	}

	var quote gjson.Result
	for _, q := range queries.Array() {
		if q.Get("queryKey.0").String() != "metalQuote" {
			continue
		}
		quote = q.Get("state.data.GetMetalQuoteV3.results.0")
		break
	}
	if !quote.Exists() {
		return "", "", fmt.Errorf("no metalQuote query in page data")
	}

	bid := quote.Get("bid")
	ask := quote.Get("ask")
	// Exists() is true for an explicit null, which would read as 0.00.
	if !bid.Exists() || bid.Type == gjson.Null || !ask.Exists() || ask.Type == gjson.Null {
		return "", "", fmt.Errorf("bid/ask missing from metal quote")
	}
	return formatPrice(bid.Float()), formatPrice(ask.Float()), nil
}

// formatPrice renders a source number the way the board shows it:
// thousands separators, two decimals. Display-only from here on.
func formatPrice(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
