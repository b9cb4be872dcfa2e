package scraper

import "testing"

const markupPage = `<html><body>
<div class="chart-header">
  <h3 class="text-4xl font-bold mr-1">$4,015.50</h3>
  <div class="flex">
    <div class="text-sm font-normal text-gray-500">Ask</div>
    <div class="text-[19px] font-medium">$4,016.20</div>
  </div>
</div>
</body></html>`

func TestMarkupStrategy_Extract(t *testing.T) {
	bid, ask, err := MarkupStrategy{}.Extract([]byte(markupPage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bid != "4,015.50" {
		t.Errorf("expected bid 4,015.50, got %q", bid)
	}
	if ask != "4,016.20" {
		t.Errorf("expected ask 4,016.20, got %q", ask)
	}
}

func TestMarkupStrategy_MissingBid(t *testing.T) {
	page := `<html><body><div class="text-sm font-normal">Ask</div></body></html>`
	if _, _, err := (MarkupStrategy{}).Extract([]byte(page)); err == nil {
		t.Fatal("expected error when bid headline is absent")
	}
}

func TestMarkupStrategy_MissingAsk(t *testing.T) {
	page := `<html><body><h3 class="text-4xl font-bold">$4,015.50</h3></body></html>`
	if _, _, err := (MarkupStrategy{}).Extract([]byte(page)); err == nil {
		t.Fatal("expected error when ask block is absent")
	}
}

func TestNextDataStrategy_NullBidAsk(t *testing.T) {
	cases := map[string]string{
		"null bid": `{"bid":null,"ask":4016.2}`,
		"null ask": `{"bid":4015.5,"ask":null}`,
	}
	for name, quote := range cases {
		page := `<html><head><script id="__NEXT_DATA__">
{"props":{"pageProps":{"dehydratedState":{"queries":[
  {"queryKey":["metalQuote"],"state":{"data":{"GetMetalQuoteV3":{"results":[` + quote + `]}}}}
]}}}}
</script></head></html>`
		bid, ask, err := NextDataStrategy{}.Extract([]byte(page))
		if err == nil {
			t.Errorf("%s: expected error, got bid=%q ask=%q", name, bid, ask)
		}
	}
}

func TestNextDataStrategy_IgnoresOtherQueries(t *testing.T) {
	page := `<html><head><script id="__NEXT_DATA__">
{"props":{"pageProps":{"dehydratedState":{"queries":[
  {"queryKey":["newsList"],"state":{"data":{}}},
  {"queryKey":["metalQuote"],"state":{"data":{"GetMetalQuoteV3":{"results":[{"bid":1234567.891,"ask":1234568.5}]}}}}
]}}}}
</script></head></html>`
	bid, ask, err := NextDataStrategy{}.Extract([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bid != "1,234,567.89" {
		t.Errorf("expected thousands-separated bid, got %q", bid)
	}
	if ask != "1,234,568.50" {
		t.Errorf("expected thousands-separated ask, got %q", ask)
	}
}
