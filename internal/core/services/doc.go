// Package services implements the driving port interfaces.
// Services contain the core conversion logic and orchestrate
// calls to driven ports (adapters).
//
// The transform pipeline lives here because its ordering and
// backpressure rules are part of the conversion contract, not
// an adapter detail.
package services
