package model

// ProjectionYear is one simulated year of the market.
// SurplusDeficit = Supply - Demand; positive = surplus, negative = deficit.
type ProjectionYear struct {
	Year           int
	Supply         float64
	Demand         float64
	SurplusDeficit float64
	Price          float64
}

// EntryKind labels a timeline row as observed or simulated.
// Keep these values stable; they are intended for CSV/JSON output.
type EntryKind string

const (
	KindHistorical EntryKind = "HISTORICAL"
	KindProjected  EntryKind = "PROJECTED"
)

// TimelineEntry is one row of the combined historical+projected timeline.
type TimelineEntry struct {
	ProjectionYear
	Kind EntryKind
}
