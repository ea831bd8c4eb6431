package tui

import "errors"

// ErrMissingSession is returned when the document session is not provided.
var ErrMissingSession = errors.New("tui: document session is required")

// ErrMissingBridge is returned when the session bridge is not provided.
var ErrMissingBridge = errors.New("tui: session bridge is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
