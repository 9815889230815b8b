// Package ports defines the contracts between the order lifecycle core and
// infrastructure: repositories with a conditional status write, the unit of
// work binding them to one transaction, notification channels and the order
// event stream.
package ports
