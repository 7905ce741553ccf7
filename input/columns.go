package input

import (
	"strings"

	"github.com/kalukad/MM-Kinetics-app/fit"
)

// Columns builds a dataset from two pasted parallel columns of numbers,
// order-correlated by position. Values are separated by newlines or any
// other whitespace; blank lines are ignored.
//
// Mismatched column lengths and unparseable entries surface as
// errs.ErrLengthMismatch and errs.ErrNonNumericValue respectively.
func Columns(substrate, velocity string) (*fit.Dataset, error) {
	return fit.ParseDataset(strings.Fields(substrate), strings.Fields(velocity))
}
