// Package services implements the driving port interfaces.
// Services contain the session logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO and no knowledge of the presentation layer.
package services
