// Package report renders analysis results for people: a plain-text summary
// of the fitted parameters and an interactive HTML page with the
// Michaelis-Menten curve and Lineweaver-Burk plots.
package report
