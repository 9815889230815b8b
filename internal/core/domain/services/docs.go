// Package services provides domain services that work across the order and
// store aggregates.
//
// The package includes:
//   - NotificationPlanner: decides who hears about an order change and renders
//     the message from the embedded templates.yaml
package services
