// Package export renders a probability mass sequence for consumers outside
// the engine: a two-column CSV table, a plotting series and an aligned text
// table.
//
// Text forms use the decimal's fixed-point rendering at the engine scale, so
// exported values never switch to scientific notation and keep every
// rounded digit, including trailing zeros.
package export
