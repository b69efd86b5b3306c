package projection

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"ggv-mieterstrom/internal/model"
)

// WriteComparisonCSV writes both ledgers to w, one row per model and year.
// Column names are stable; the download handler and the CLI share this.
func WriteComparisonCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)

	header := []string{
		"scenario",
		"year",
		"energy_kwh",
		"self_consumed_kwh",
		"feed_in_kwh",
		"internal_price_eur_kwh",
		"export_price_eur_kwh",
		"cap_bound",
		"internal_revenue_eur",
		"export_revenue_eur",
		"subsidy_revenue_eur",
		"total_revenue_eur",
		"opex_eur",
		"capex_eur",
		"net_cash_flow_eur",
		"cum_cash_flow_eur",
		"discounted_cash_flow_eur",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	parts := []struct {
		model  model.SupplyModel
		ledger []YearlyRecord
	}{
		{model.ModelGGV, res.GGV.Ledger},
		{model.ModelMieterstrom, res.Mieterstrom.Ledger},
	}
	for _, part := range parts {
		for _, r := range part.ledger {
			row := []string{
				string(part.model),
				strconv.Itoa(r.Year),
				fmtFloat(r.EnergyKWh),
				fmtFloat(r.SelfConsumedKWh),
				fmtFloat(r.FeedInKWh),
				fmtFloat(r.InternalPrice),
				fmtFloat(r.ExportPrice),
				strconv.FormatBool(r.CapBound),
				fmtFloat(r.InternalRevenue),
				fmtFloat(r.ExportRevenue),
				fmtFloat(r.SubsidyRevenue),
				fmtFloat(r.TotalRevenue),
				fmtFloat(r.Opex),
				fmtFloat(r.Capex),
				fmtFloat(r.NetCashFlow),
				fmtFloat(r.CumCashFlow),
				fmtFloat(r.DiscountedCashFlow),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteComparisonCSVFile is the path-based variant used by the CLI.
func WriteComparisonCSVFile(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteComparisonCSV(f, res)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
