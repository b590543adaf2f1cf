package models

import "time"

// FetchResult is the outcome of a single GET. Body is only meaningful when OK reports true.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       string
	Outcome    FetchOutcome
	Err        error
	LoadTime   time.Duration
}

func (r FetchResult) OK() bool {
	return r.Outcome == Succeeded
}

// Aggregate is the combined text of every successful fetch plus the per-URL results, in input order.
type Aggregate struct {
	Content string
	Results []FetchResult
}

func (a Aggregate) Fetched() int {
	n := 0
	for _, r := range a.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

func (a Aggregate) Skipped() int {
	return len(a.Results) - a.Fetched()
}
