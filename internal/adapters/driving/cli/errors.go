package cli

import "errors"

var (
	errServicesNotConfigured = errors.New("services not configured")
	errUnknownSetting        = errors.New("unknown setting")
)
