package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"ggv-mieterstrom/internal/analysis"
	"ggv-mieterstrom/internal/api/models"
	"ggv-mieterstrom/internal/config"
	"ggv-mieterstrom/internal/model"
	"ggv-mieterstrom/internal/projection"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles projection-related requests
type ProjectHandler struct {
	presetDir string
}

// NewProjectHandler creates a new projection handler
func NewProjectHandler(presetDir string) *ProjectHandler {
	return &ProjectHandler{presetDir: presetDir}
}

// RunProjection handles POST /api/v1/project
func (h *ProjectHandler) RunProjection(c *gin.Context) {
	params, req, ok := h.bindScenario(c)
	if !ok {
		return
	}

	engine := projection.New()
	result, err := engine.Run(params)
	if err != nil {
		writeInputError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(result, req.Options.IncludeLedger))
}

// ExportCSV handles POST /api/v1/project/export
// It responds with the comparison table as a downloadable CSV file.
func (h *ProjectHandler) ExportCSV(c *gin.Context) {
	params, _, ok := h.bindScenario(c)
	if !ok {
		return
	}

	engine := projection.New()
	result, err := engine.Run(params)
	if err != nil {
		writeInputError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="scenario_years.csv"`)
	c.Status(http.StatusOK)
	if err := projection.WriteComparisonCSV(c.Writer, result); err != nil {
		// Headers are already out; all we can do is drop the connection.
		c.Abort()
	}
}

// Breakeven handles POST /api/v1/project/breakeven
func (h *ProjectHandler) Breakeven(c *gin.Context) {
	params, _, ok := h.bindScenario(c)
	if !ok {
		return
	}

	engine := projection.New()
	result, err := engine.Run(params)
	if err != nil {
		writeInputError(c, err)
		return
	}

	report := analysis.Report(params, result.Mieterstrom)
	c.JSON(http.StatusOK, models.BreakevenResponse{
		Status:                  "ok",
		FirstCapBoundYear:       report.FirstCapBoundYear,
		FirstNegativeMarginYear: report.FirstNegativeMarginYear,
		MinMarginEURKWh:         report.MinMarginPerKWh,
		BreakEvenTenantPrice:    report.BreakEvenTenantPrice,
	})
}

// bindScenario parses the request body and resolves preset + overrides +
// defaults into engine parameters. On failure it writes the error response
// and returns ok=false.
func (h *ProjectHandler) bindScenario(c *gin.Context) (model.ScenarioParams, models.ProjectRequest, bool) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return model.ScenarioParams{}, req, false
	}

	base := config.ScenarioConfig{}
	if req.Preset != "" {
		loaded, err := config.LoadPresetFile(filepath.Join(h.presetDir, req.Preset+".yaml"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNKNOWN_PRESET",
					Message: fmt.Sprintf("failed to load preset %q: %v", req.Preset, err),
				},
			})
			return model.ScenarioParams{}, req, false
		}
		base = loaded
	}

	merged := config.MergeScenario(base, payloadToConfig(req.Scenario)).WithDefaults()
	return merged.ToModelParams(), req, true
}

func payloadToConfig(s models.ScenarioPayload) config.ScenarioConfig {
	return config.ScenarioConfig{
		Name: s.Name,

		CapacityKWp:   s.CapacityKWp,
		SpecificYield: s.SpecificYield,

		SelfConsumptionShare: s.SelfConsumptionShare,
		FeedInShareOverride:  s.FeedInShareOverride,
		BatteryUpliftShare:   s.BatteryUpliftShare,

		InternalPrice:     s.InternalPrice,
		TenantPrice:       s.TenantPrice,
		BasicSupplyTariff: s.BasicSupplyTariff,
		CapFraction:       s.CapFraction,
		SubsidyRate:       s.SubsidyRate,

		FeedInTariff:          s.FeedInTariff,
		MarketingFee:          s.MarketingFee,
		MarketingThresholdKWp: s.MarketingThresholdKWp,

		CapexEUR:       s.CapexEUR,
		OpexPctOfCapex: s.OpexPctOfCapex,
		OpexFixedEUR:   s.OpexFixedEUR,

		HorizonYears: s.HorizonYears,
		Degradation:  s.Degradation,

		PriceGrowth:       s.PriceGrowth,
		BasicTariffGrowth: s.BasicTariffGrowth,
		CostGrowth:        s.CostGrowth,

		DiscountRate: s.DiscountRate,
	}
}

func writeInputError(c *gin.Context, err error) {
	var inputErr *model.InputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: inputErr.Error(),
				Details: map[string]interface{}{
					"field":  inputErr.Field,
					"reason": inputErr.Reason,
				},
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "PROJECTION_ERROR",
			Message: err.Error(),
		},
	})
}

func buildResponse(res *projection.Result, includeLedger bool) models.ProjectResponse {
	return models.ProjectResponse{
		Status:         "ok",
		CapPriceEURKWh: res.CapPrice,
		GGV:            buildModelPayload(res.GGV, includeLedger),
		Mieterstrom:    buildModelPayload(res.Mieterstrom, includeLedger),
	}
}

func buildModelPayload(mr projection.ModelResult, includeLedger bool) models.ModelPayload {
	payload := models.ModelPayload{
		Summary: models.SummaryPayload{
			Model:       string(mr.Summary.Model),
			NPVEUR:      mr.Summary.NPV,
			PaybackYear: mr.Summary.PaybackYear,

			TotalRevenueEUR:     mr.Summary.TotalRevenue,
			TotalNetCashFlowEUR: mr.Summary.TotalNetCashFlow,
			FinalCumCashFlowEUR: mr.Summary.FinalCumCashFlow,

			EnergyTotalKWh:       mr.Summary.EnergyTotalKWh,
			SelfConsumedTotalKWh: mr.Summary.SelfConsumedTotalKWh,
			FeedInTotalKWh:       mr.Summary.FeedInTotalKWh,
		},
	}
	if includeLedger {
		payload.Ledger = make([]models.LedgerRow, len(mr.Ledger))
		for i, r := range mr.Ledger {
			payload.Ledger[i] = models.LedgerRow{
				Year: r.Year,

				EnergyKWh:       r.EnergyKWh,
				SelfConsumedKWh: r.SelfConsumedKWh,
				FeedInKWh:       r.FeedInKWh,

				InternalPriceEURKWh: r.InternalPrice,
				ExportPriceEURKWh:   r.ExportPrice,
				CapBound:            r.CapBound,

				InternalRevenueEUR: r.InternalRevenue,
				ExportRevenueEUR:   r.ExportRevenue,
				SubsidyRevenueEUR:  r.SubsidyRevenue,
				TotalRevenueEUR:    r.TotalRevenue,

				OpexEUR:  r.Opex,
				CapexEUR: r.Capex,

				NetCashFlowEUR:        r.NetCashFlow,
				CumCashFlowEUR:        r.CumCashFlow,
				DiscountedCashFlowEUR: r.DiscountedCashFlow,
			}
		}
	}
	return payload
}
