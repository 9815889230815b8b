// Package errs provides the typed errors shared by every layer of the
// marketplace service.
//
// The package includes:
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//   - ConflictError: a write lost against a concurrent writer
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound) returned by Unwrap,
//     so callers can classify with errors.Is
//   - A struct type carrying the details, reachable with errors.As
//   - Constructor functions with and without cause
//
// The HTTP adapter maps the sentinels onto status codes, so new error kinds
// belong here rather than in individual packages.
package errs
