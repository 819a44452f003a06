// Package kernel contains the shared value objects of the FoodMate domain:
// entity identifiers, fixed-point money, and running-average ratings.
//
// Everything in this package is immutable. Operations return new values
// rather than mutating receivers, which makes the types safe to embed in
// aggregates and to pass across layer boundaries.
package kernel
