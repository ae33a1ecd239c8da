// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the core building blocks for
// error-aware pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T, error]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/DoubleMap/MapError: transform successful values or held errors
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Recover: turn a failure back into a success
// - Finally: reduce to a concrete value via success/error handlers
package solo
