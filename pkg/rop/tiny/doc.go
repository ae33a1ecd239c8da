// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of Result[T, E] values.
//
// API surface:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/To: transform or switch value to a new Result
// - Or/And: pick among alternative or required chains
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
