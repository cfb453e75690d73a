// Package order provides domain entities and business logic for order
// management in the admin system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the order line collection and the status
//   - OrderLine: An immutable line item with a price snapshot of its product
//   - Status: The order lifecycle value with its terminal-state rules
//
// Key business rules:
//   - An order is modifiable only while its status is not Completed or Cancelled
//   - An order can be completed only when it has at least one line
//   - Each product appears on an order at most once
//   - Line removal is idempotent: removing an unknown line changes nothing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
