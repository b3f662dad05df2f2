package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"commodity-forecast/internal/api/models"
	"commodity-forecast/internal/data"
	"commodity-forecast/internal/model"
	"commodity-forecast/internal/simulate"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation-related requests.
type SimulateHandler struct {
	defaults simulate.Params
	store    *data.ResultStore
}

// NewSimulateHandler creates a new simulation handler. Completed
// results are kept in store so timelines can be fetched by id later.
func NewSimulateHandler(defaults simulate.Params, store *data.ResultStore) *SimulateHandler {
	return &SimulateHandler{defaults: defaults, store: store}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, ok := h.resolveSeries(c, req.Series, req.ManualData)
	if !ok {
		return
	}

	result, ok := h.run(c, series, toScenario(req.Scenario), req.Options.Horizon)
	if !ok {
		return
	}

	id := h.store.Put(result)
	c.JSON(http.StatusOK, h.buildResponse(id, result, req.Options.IncludeTimeline))
}

// RunSimulationUpload handles POST /api/v1/simulate/upload:
// a multipart CSV file plus percent-unit policy form fields.
func (h *SimulateHandler) RunSimulationUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "MISSING_SERIES", "a CSV file upload is required")
		return
	}
	f, err := file.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "MALFORMED_INPUT", err.Error())
		return
	}
	defer f.Close()

	series, err := data.ParseSeriesCSV(f)
	if err != nil {
		h.writeSimulationError(c, err)
		return
	}

	scenario := model.PolicyScenario{
		ProductionAdjustment:  formPct(c, "production_adjustment_pct"),
		ConsumptionAdjustment: formPct(c, "consumption_adjustment_pct"),
	}
	horizon := 0
	if v := c.PostForm("horizon"); v != "" {
		horizon, _ = strconv.Atoi(v)
	}

	result, ok := h.run(c, series, scenario, horizon)
	if !ok {
		return
	}

	id := h.store.Put(result)
	c.JSON(http.StatusOK, h.buildResponse(id, result, true))
}

// GetTimeline handles GET /api/v1/simulations/:id/timeline
func (h *SimulateHandler) GetTimeline(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.store.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "no simulation with id "+id+" (results expire)")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       id,
		"timeline": convertTimeline(result.Timeline),
	})
}

// CompareScenarios handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, ok := h.resolveSeries(c, req.Series, req.ManualData)
	if !ok {
		return
	}

	engine, err := simulate.New(h.params(req.Options.Horizon))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		scenario := toScenario(mergeScenarioInput(req.BaseScenario, variation.Scenario))
		result, err := engine.Run(series, scenario)
		if err != nil {
			continue // Skip failed variations
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func (h *SimulateHandler) params(horizon int) simulate.Params {
	p := h.defaults
	if horizon > 0 {
		p.Horizon = horizon
	}
	return p
}

func (h *SimulateHandler) run(c *gin.Context, series model.HistoricalSeries, scenario model.PolicyScenario, horizon int) (*simulate.Result, bool) {
	engine, err := simulate.New(h.params(horizon))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return nil, false
	}
	result, err := engine.Run(series, scenario)
	if err != nil {
		h.writeSimulationError(c, err)
		return nil, false
	}
	return result, true
}

// resolveSeries builds the historical series from whichever source the
// request carries. Writes the error response itself on failure.
func (h *SimulateHandler) resolveSeries(c *gin.Context, records []models.RecordInput, manual string) (model.HistoricalSeries, bool) {
	switch {
	case len(records) > 0:
		series := make(model.HistoricalSeries, len(records))
		for i, r := range records {
			series[i] = model.HistoricalRecord{
				Year:                 r.Year,
				Production:           r.Production,
				ConsumptionPerCapita: r.ConsumptionPerCapita,
				Population:           r.Population,
				Price:                r.Price,
			}
		}
		return series, true
	case strings.TrimSpace(manual) != "":
		series, err := data.ParseManualText(manual)
		if err != nil {
			h.writeSimulationError(c, err)
			return nil, false
		}
		return series, true
	default:
		writeError(c, http.StatusBadRequest, "MISSING_SERIES", "provide either a record series or manual_data text")
		return nil, false
	}
}

func (h *SimulateHandler) writeSimulationError(c *gin.Context, err error) {
	var insufficient *simulate.InsufficientHistoryError
	var malformed *data.MalformedInputError
	switch {
	case errors.As(err, &insufficient):
		writeError(c, http.StatusBadRequest, "INSUFFICIENT_HISTORY", err.Error())
	case errors.As(err, &malformed):
		writeError(c, http.StatusBadRequest, "MALFORMED_INPUT", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err.Error())
	}
}

func (h *SimulateHandler) buildResponse(id string, result *simulate.Result, includeTimeline bool) models.SimulationResponse {
	response := models.SimulationResponse{
		ID:      id,
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if includeTimeline {
		response.Timeline = convertTimeline(result.Timeline)
	}
	return response
}

func buildSummary(result *simulate.Result) models.SimulationSummary {
	historical := 0
	for _, e := range result.Timeline {
		if e.Kind == model.KindHistorical {
			historical++
		}
	}
	return models.SimulationSummary{
		ScenarioLabel:         result.Summary.Scenario,
		LastHistoricalYear:    result.Summary.LastHistoricalYear,
		FirstProjectedPrice:   result.Summary.FirstProjectedPrice,
		LastProjectedPrice:    result.Summary.LastProjectedPrice,
		FirstProjectedBalance: result.Summary.FirstProjectedBalance,
		LastProjectedBalance:  result.Summary.LastProjectedBalance,
		HistoricalYears:       historical,
		ProjectedYears:        len(result.Timeline) - historical,
	}
}

func convertTimeline(timeline []model.TimelineEntry) []models.TimelineRow {
	rows := make([]models.TimelineRow, len(timeline))
	for i, e := range timeline {
		rows[i] = models.TimelineRow{
			Year:           e.Year,
			Kind:           string(e.Kind),
			Supply:         e.Supply,
			Demand:         e.Demand,
			SurplusDeficit: e.SurplusDeficit,
			Price:          e.Price,
		}
	}
	return rows
}

func toScenario(in models.ScenarioInput) model.PolicyScenario {
	return model.PolicyScenario{
		ProductionAdjustment:  in.ProductionAdjustmentPct / 100,
		ConsumptionAdjustment: in.ConsumptionAdjustmentPct / 100,
	}
}

// mergeScenarioInput overlays non-zero fields from override onto base.
func mergeScenarioInput(base, override models.ScenarioInput) models.ScenarioInput {
	merged := base
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.ProductionAdjustmentPct != 0 {
		merged.ProductionAdjustmentPct = override.ProductionAdjustmentPct
	}
	if override.ConsumptionAdjustmentPct != 0 {
		merged.ConsumptionAdjustmentPct = override.ConsumptionAdjustmentPct
	}
	return merged
}

func formPct(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.DefaultPostForm(key, "0"), 64)
	if err != nil {
		return 0
	}
	return v / 100
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
