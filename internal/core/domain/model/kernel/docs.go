// Package kernel holds the value objects shared by every aggregate of the
// marketplace: identifiers and money.
//
// The package includes:
//   - UUID: an identifier whose zero value is invalid
//   - Money: a non-negative decimal amount with two fraction digits
//
// Both types are immutable and safe for concurrent use.
package kernel
