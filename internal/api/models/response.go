package models

// SimulationResponse represents the response from a simulation run.
type SimulationResponse struct {
	ID       string            `json:"id,omitempty"`
	Status   string            `json:"status"`
	Summary  SimulationSummary `json:"summary"`
	Timeline []TimelineRow     `json:"timeline,omitempty"`
}

// SimulationSummary contains the scenario-level aggregate figures.
type SimulationSummary struct {
	ScenarioLabel      string `json:"scenario_label"`
	LastHistoricalYear int    `json:"last_historical_year"`

	FirstProjectedPrice float64 `json:"first_projected_price"`
	LastProjectedPrice  float64 `json:"last_projected_price"`

	FirstProjectedBalance float64 `json:"first_projected_balance"`
	LastProjectedBalance  float64 `json:"last_projected_balance"`

	HistoricalYears int `json:"historical_years"`
	ProjectedYears  int `json:"projected_years"`
}

// TimelineRow represents one year in the combined timeline.
type TimelineRow struct {
	Year           int     `json:"year"`
	Kind           string  `json:"kind"` // "HISTORICAL" or "PROJECTED"
	Supply         float64 `json:"supply"`
	Demand         float64 `json:"demand"`
	SurplusDeficit float64 `json:"surplus_deficit"`
	Price          float64 `json:"price"`
}

// CompareResponse represents the response from a scenario comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string            `json:"name"`
	Summary SimulationSummary `json:"summary"`
}

// ScenarioInfo represents information about a scenario preset.
type ScenarioInfo struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	File                     string  `json:"file"`
	ProductionAdjustmentPct  float64 `json:"production_adjustment_pct"`
	ConsumptionAdjustmentPct float64 `json:"consumption_adjustment_pct"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
