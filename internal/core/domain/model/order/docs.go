// Package order implements the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root, immutable except for its status
//   - Status: the eleven lifecycle states and their stored names
//   - Edge: one row of the transition table (from, roles, to, effect, audiences)
//   - Actor and Role: who asks for a status change
//
// Every call site (checkout, store dashboard, rider dashboard, admin panel)
// goes through Order.Transition, so the transition table in transition.go is
// the single definition of legal status changes.
//
// Order.Transition does not protect against concurrent writers. The caller
// must persist the returned Change with a conditional write on the previous
// status and version.
package order
