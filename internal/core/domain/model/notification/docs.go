// Package notification holds the messages sent to customers, store owners
// and the rider pool after an order changes. Delivery is best-effort; nothing
// here is persisted.
package notification
