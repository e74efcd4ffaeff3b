// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Collectors use the codes to decide whether a provider failure is local to
// one category (ErrCodeUnavailable, ErrCodePermissionDenied) or fatal for the
// whole snapshot (everything else).
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodePermissionDenied,
//	    "failed to read disk usage",
//	    cause,
//	    map[string]any{
//	        "mountpoint": "/mnt/secure",
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodePermissionDenied) {
//	    // emit a partial record
//	}
package errors
