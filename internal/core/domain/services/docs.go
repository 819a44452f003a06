// Package services contains stateless domain services: logic that spans
// multiple aggregates and therefore belongs to none of them.
//
// PartnerDispatcher pairs an in-flight order with an available delivery
// partner. RatingAggregator fans a delivered order's rating out to the
// restaurant, its dishes, and the partner. The payment processors simulate
// the charge step of order placement.
package services
