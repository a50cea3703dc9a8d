// Package combinatorics generates rows of binomial coefficients as unbounded
// integers.
//
// What is a row?
//
//	Row(n) = [C(n,0), C(n,1), …, C(n,n)], the n-th line of Pascal's triangle.
//	C(512, 256) alone has 153 decimal digits, so coefficients are *big.Int;
//	fixed-width integers overflow long before the supported n = 512.
//
// Algorithm:
//
//	A single buffer of k+1 ones is advanced from row 2 to row n with the
//	addition recurrence row[i][j] = row[i-1][j] + row[i-1][j-1], updated
//	left to right while a carried copy of the previous cell keeps the
//	operand that the in-place write would otherwise destroy.
//
// Complexity:
//
//	Time:   O(n·k) big-integer additions
//	Memory: O(k) integers
//
// Usage:
//
//	row, err := combinatorics.Row(4)
//	// row = [1 4 6 4 1]
package combinatorics
