// Package errs provides standardized error types for the operations board.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error type per failure class:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or logically invalid input
//   - ObjectNotFoundError: a referenced entity does not resolve within the
//     caller's organization
//   - InvalidStatusTransitionError: a lifecycle transition not present in the
//     entity's transition table
//   - QuotaExceededError: an organization's plan limit blocks the action
//   - VersionConflictError: an optimistic-concurrency check failed
//   - StorageError: persistence collaborator I/O failure, retryable by callers
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
//
// Operations never report failure as a bare nil/false: every failure carries
// one of these typed reasons so callers can distinguish "not found" from
// "invalid state" from "quota exceeded".
package errs
