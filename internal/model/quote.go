package model

// MetalQuote is one metal's spot price at capture time. Bid and Ask keep
// the source's formatting (thousands separators, two decimals); they are
// display strings and are never re-parsed into numbers.
type MetalQuote struct {
	Metal string `json:"metal"`
	Bid   string `json:"bid"`
	Ask   string `json:"ask"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// PriceSnapshot pairs both tracked metals captured together. Extraction
// returns a fully populated snapshot or an error, never a partial one.
type PriceSnapshot struct {
	Gold   MetalQuote `json:"gold"`
	Silver MetalQuote `json:"silver"`
}
