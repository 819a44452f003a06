// Package order contains the order aggregate and its supporting value
// objects.
//
// An order starts life as a transient Cart the customer edits, and is frozen
// into an Order at creation time: line names and unit prices are snapshots,
// so later menu edits never change what a placed order owes. The Order owns
// the pricing ledger (subtotal, discount, tip), the delivery status state
// machine, the assigned partner ID, and the per-order chat log.
//
// Status transitions are forward-only with no skips; Cancelled is reachable
// from Pending alone. Advancing the status posts an automatic bot message to
// the order chat so customers see progress without polling.
package order
