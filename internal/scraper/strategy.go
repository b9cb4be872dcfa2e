package scraper

import "fmt"

// Strategy extracts bid and ask price text from one metal's page. The
// source markup drifts over time; swapping the configured Strategy must be
// the only change needed when it does.
type Strategy interface {
	Extract(page []byte) (bid, ask string, err error)
	Name() string
}

// StrategyForName resolves a configured strategy name. The empty string
// selects the default embedded-JSON strategy.
func StrategyForName(name string) (Strategy, error) {
	switch name {
	case "", "nextdata":
		return NextDataStrategy{}, nil
	case "markup":
		return MarkupStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown scrape strategy %q", name)
}
