package model

// SupplyModel identifies one of the two compared business models.
// Keep these values stable; they are intended for CSV and JSON output.
type SupplyModel string

const (
	// ModelGGV is the building-local supply model with a freely set
	// internal price.
	ModelGGV SupplyModel = "GGV"
	// ModelMieterstrom is the regulated tenant-electricity model: price
	// capped at a fraction of the basic-supply tariff, per-kWh subsidy on
	// tenant-delivered energy.
	ModelMieterstrom SupplyModel = "MIETERSTROM"
)

// Regulated reports whether the price cap and subsidy apply.
func (m SupplyModel) Regulated() bool { return m == ModelMieterstrom }
