package report

// Units carries the measurement unit labels attached to axis titles and
// parameter printouts. The labels are annotations only; no conversion is
// performed.
type Units struct {
	Substrate string
	Velocity  string
}

// DefaultUnits returns the conventional units for enzyme assays,
// millimolar substrate and micromolar-per-minute velocity.
func DefaultUnits() Units {
	return Units{Substrate: "mM", Velocity: "μM/min"}
}
