// Package errors provides typed errors with exit codes for nextfit.
//
// # Error Types
//
// NextFitError is the base error type that wraps an error with an exit code:
//
//	type NextFitError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess       = 0 // Success
//	ExitGeneralError  = 1 // General/unknown errors
//	ExitInvalidInput  = 2 // Non-numeric or non-positive size, empty name
//	ExitNoFit         = 3 // No block has enough remaining capacity
//	ExitBlockNotFound = 4 // Block ordinal out of range
//	ExitConfigError   = 5 // Configuration or layout error
//
// A failed allocation is not an error inside the allocator: it is reported
// as a result value. NoFitFound exists for callers that choose to treat it as
// one (for example `nextfit run --strict`).
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
