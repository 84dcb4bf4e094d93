// Package strategy provides built-in accelerator selection strategies.
//
// Selection strategies decide which accelerator in the pool receives a
// request. The package includes three built-in strategies:
//
//   - RoundRobin: Cyclic distribution with linear probing past unavailable accelerators
//   - LeastConnections: Picks the available accelerator with the lowest current load
//   - PowerOfTwoChoices: Compares two random candidates and picks the less loaded one
//
// # Strategy Selection Guide
//
// RoundRobin:
//   - Use for uniform request costs and homogeneous pools
//   - Guarantees cyclic fairness: with all accelerators available, N calls
//     visit every index exactly once
//   - O(1) common case, O(n) worst case when probing past unavailable units
//
// LeastConnections:
//   - Use when request costs vary and the tightest balance matters
//   - Always picks a globally minimal-load available accelerator
//   - O(n) per selection (full pool scan)
//
// PowerOfTwoChoices:
//   - Use for large pools where an O(n) scan per request is too expensive
//   - Two random draws with replacement; the less loaded available draw wins,
//     ties favor the first draw
//   - O(1) per selection with near-LeastConnections balance (the classic
//     balls-into-bins result: max load drops from Θ(log n / log log n) to
//     Θ(log log n))
//
// Strategies are constructed directly (NewRoundRobin, NewLeastConnections,
// NewPowerOfTwoChoices) or by registry key through New, which is the surface
// used by binding layers selecting a strategy by name.
//
// Custom strategies can be implemented by satisfying the
// types.SelectionStrategy interface.
package strategy
