package models

// SimulationRequest represents the request body for running a simulation.
// The historical series comes either inline as typed records or as
// pasted manual text; exactly one source is required.
type SimulationRequest struct {
	Series     []RecordInput     `json:"series,omitempty"`
	ManualData string            `json:"manual_data,omitempty"`
	Scenario   ScenarioInput     `json:"scenario"`
	Options    SimulationOptions `json:"options,omitempty"`
}

// RecordInput is one historical observation.
type RecordInput struct {
	Year                 int     `json:"year"`
	Production           float64 `json:"production"`
	ConsumptionPerCapita float64 `json:"consumption_per_capita"`
	Population           float64 `json:"population"` // thousands
	Price                float64 `json:"price"`
}

// ScenarioInput carries policy adjustments in percent units
// (10 = +10% faster growth).
type ScenarioInput struct {
	Name                     string  `json:"name,omitempty"`
	ProductionAdjustmentPct  float64 `json:"production_adjustment_pct"`
	ConsumptionAdjustmentPct float64 `json:"consumption_adjustment_pct"`
}

// SimulationOptions contains optional simulation parameters.
type SimulationOptions struct {
	Horizon         int  `json:"horizon,omitempty"`          // 0 = default (5)
	IncludeTimeline bool `json:"include_timeline,omitempty"` // default: false
}

// CompareRequest represents a request to compare multiple scenarios
// over the same historical series.
type CompareRequest struct {
	Series       []RecordInput       `json:"series,omitempty"`
	ManualData   string              `json:"manual_data,omitempty"`
	BaseScenario ScenarioInput       `json:"base_scenario"`
	Variations   []ScenarioVariation `json:"variations" binding:"required"`
	Options      SimulationOptions   `json:"options,omitempty"`
}

// ScenarioVariation defines a variation to test.
type ScenarioVariation struct {
	Name     string        `json:"name" binding:"required"`
	Scenario ScenarioInput `json:"scenario"`
}
