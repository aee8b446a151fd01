package stats

import "context"

// Summary is the corpus-wide record count rollup served at /stats.
type Summary struct {
	Authors    int `json:"authors"`
	Works      int `json:"works"`
	Characters int `json:"characters"`
	Instances  int `json:"instances"`
	Speeches   int `json:"speeches"`
	Clusters   int `json:"clusters"`
	Tags       int `json:"tags"`
}

type Repository interface {
	Summarize(context context.Context) (*Summary, error)
}
