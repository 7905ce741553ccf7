// Package input converts the supported raw data shapes into the validated
// observation set the fit package consumes.
//
// Three adapters cover the shapes users supply kinetics data in:
//
//   - Columns: two pasted parallel columns of numbers, one value per line.
//   - ReadTable: a delimited table with Substrate_Concentration and
//     Initial_Velocity header columns.
//   - ReadFile / Open: the table shape read from a file, with transparent
//     gzip, zstd and lz4 decompression detected by magic number.
//
// All adapters normalize to a *fit.Dataset and surface validation failures
// through the errs package sentinels.
package input
