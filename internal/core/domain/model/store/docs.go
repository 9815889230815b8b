// Package store provides the Store aggregate: the business a store actor
// acts for, and where store-owner notifications are delivered.
package store
