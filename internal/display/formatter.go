package display

import (
	"strings"

	"SpotBoard/internal/model"
)

var monthNames = map[string]string{
	"Jan": "January", "Feb": "February", "Mar": "March",
	"Apr": "April", "May": "May", "Jun": "June",
	"Jul": "July", "Aug": "August", "Sep": "September",
	"Oct": "October", "Nov": "November", "Dec": "December",
}

// FormatPrices renders a snapshot into the six-line board layout:
//
//	GOLD  BID:4,015.50
//	      ASK:4,016.20
//
//	SILVER BID:49.10
//	       ASK:49.35
//	October 10 02:30 PM
//
// Missing fields render as N/A; formatting never fails.
func FormatPrices(snap *model.PriceSnapshot) string {
	if snap == nil {
		return ""
	}
	stamp := strings.TrimSpace(expandDate(snap.Gold.Date) + " " + snap.Gold.Time)
	lines := []string{
		"GOLD  BID:" + orNA(snap.Gold.Bid),
		"      ASK:" + orNA(snap.Gold.Ask),
		"",
		"SILVER BID:" + orNA(snap.Silver.Bid),
		"       ASK:" + orNA(snap.Silver.Ask),
		stamp,
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// expandDate turns a captured date like "Oct 10, 2025" into "October 10":
// the abbreviated month is spelled out and the year dropped.
func expandDate(date string) string {
	monthDay := strings.TrimSpace(strings.SplitN(date, ",", 2)[0])
	for abbr, full := range monthNames {
		if strings.HasPrefix(monthDay, abbr) {
			return full + strings.TrimPrefix(monthDay, abbr)
		}
	}
	return monthDay
}
