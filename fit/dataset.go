package fit

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/kalukad/MM-Kinetics-app/errs"
)

// Dataset is a validated, immutable set of paired kinetic observations:
// substrate concentrations and the initial velocities measured at them.
//
// A Dataset is constructed fresh per analysis, never mutated afterwards, and
// owns copies of the input slices so later caller-side mutation cannot leak
// into an analysis.
type Dataset struct {
	s []float64
	v []float64
}

// NewDataset validates two equal-length numeric sequences and returns the
// observation set.
//
// Returns errs.ErrLengthMismatch (reporting both lengths) when the sequences
// differ in length, and errs.ErrNonNumericValue when any element is NaN or
// infinite.
func NewDataset(s, v []float64) (*Dataset, error) {
	if len(s) != len(v) {
		return nil, fmt.Errorf("%w: %d substrate values vs %d velocity values",
			errs.ErrLengthMismatch, len(s), len(v))
	}

	for i, val := range s {
		if !isFinite(val) {
			return nil, fmt.Errorf("%w: substrate[%d] = %v", errs.ErrNonNumericValue, i, val)
		}
	}
	for i, val := range v {
		if !isFinite(val) {
			return nil, fmt.Errorf("%w: velocity[%d] = %v", errs.ErrNonNumericValue, i, val)
		}
	}

	return &Dataset{s: slices.Clone(s), v: slices.Clone(v)}, nil
}

// ParseDataset validates two raw string sequences, converting every element
// to a finite float64. Unparseable entries are reported with column, index
// and offending value, never silently dropped or coerced.
func ParseDataset(s, v []string) (*Dataset, error) {
	if len(s) != len(v) {
		return nil, fmt.Errorf("%w: %d substrate values vs %d velocity values",
			errs.ErrLengthMismatch, len(s), len(v))
	}

	sv, err := parseColumn("substrate", s)
	if err != nil {
		return nil, err
	}
	vv, err := parseColumn("velocity", v)
	if err != nil {
		return nil, err
	}

	return &Dataset{s: sv, v: vv}, nil
}

func parseColumn(name string, raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, tok := range raw {
		val, err := strconv.ParseFloat(tok, 64)
		if err != nil || !isFinite(val) {
			return nil, fmt.Errorf("%w: %s[%d] = %q", errs.ErrNonNumericValue, name, i, tok)
		}
		out[i] = val
	}

	return out, nil
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.s)
}

// Substrate returns a copy of the substrate concentration column.
func (d *Dataset) Substrate() []float64 {
	return slices.Clone(d.s)
}

// Velocity returns a copy of the initial velocity column.
func (d *Dataset) Velocity() []float64 {
	return slices.Clone(d.v)
}

// Fingerprint returns a stable xxHash64 identifier of the observation set.
// Two datasets with the same values in the same order share a fingerprint;
// swapping the columns or reordering rows changes it.
func (d *Dataset) Fingerprint() uint64 {
	h := xxhash.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(d.s)))
	_, _ = h.Write(buf[:])

	for _, val := range d.s {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(val))
		_, _ = h.Write(buf[:])
	}
	for _, val := range d.v {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(val))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
