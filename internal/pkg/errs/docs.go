// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrForbidden, ...)
// with a struct carrying the details, so callers classify with errors.Is and
// inspect with errors.As:
//   - ObjectNotFoundError: a referenced order, user or product does not exist
//   - ForbiddenError: the caller's role may not perform the action
//   - ConflictError: an optimistic concurrency check failed
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     malformed input, grouped by IsInvalidInput
package errs
