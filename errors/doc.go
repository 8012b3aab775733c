// Package errors provides structured error types for the wrapper kind catalog.
//
// Errors are categorized by Phase (which operation failed) and Kind (error category).
// The Error type carries the offending Go type, the target kind or type, the
// value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindIncompatibleType).
//		GoType("wrapper.Long").
//		Target("Int").
//		Detail("narrowing conversion refused").
//		Build()
//
// Detail stores its argument verbatim; Detailf formats it.
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IncompatibleType(errors.PhaseConvert, "wrapper.Long", "wrapper.Int")
//	err := errors.InvalidArgument(errors.PhaseLookup, "not a basic type tag", '[')
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match any phase:
//
//	if errors.Is(err, errors.ErrIncompatibleType) { ... }
package errors
