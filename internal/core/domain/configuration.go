package domain

import (
	"strconv"
	"strings"
)

// CurrentSchemaVersion is the configuration schema written by this build.
// Files carrying a larger number are rejected; smaller or equal are read.
const CurrentSchemaVersion = 15012

// Configuration field keys.
const (
	KeyConfigVersion = "config_version"
	KeyMouseDisabled = "mouse_disabled"
	KeyOpacity       = "opacity"
	KeyOldUI         = "old_ui"
	KeyReloadLast    = "reload_last"
	KeyLastFile      = "last_file"
	KeyRecentFiles   = "recent_files"
)

// Configuration is the flat key-value blob persisted between runs.
type Configuration struct {
	// SchemaVersion identifies the program version that wrote the file.
	SchemaVersion int

	// Fields holds string, bool and numeric values keyed by name.
	Fields map[string]any
}

// NewConfiguration returns an empty configuration at the current schema.
func NewConfiguration() *Configuration {
	return &Configuration{
		SchemaVersion: CurrentSchemaVersion,
		Fields:        make(map[string]any),
	}
}

// IsCompatible reports whether a file at this schema may be applied.
// Equal versions are compatible; only newer ones are rejected.
func (c *Configuration) IsCompatible() bool {
	return c.SchemaVersion <= CurrentSchemaVersion
}

// Set stores a field value.
func (c *Configuration) Set(key string, value any) {
	if c.Fields == nil {
		c.Fields = make(map[string]any)
	}
	c.Fields[key] = value
}

// Has returns true if key is present.
func (c *Configuration) Has(key string) bool {
	_, ok := c.Fields[key]
	return ok
}

// String returns a string field. Non-string values are formatted.
func (c *Configuration) String(key string) (string, bool) {
	val, ok := c.Fields[key]
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Bool returns a bool field. String values "true"/"false" are accepted.
func (c *Configuration) Bool(key string) (bool, bool) {
	val, ok := c.Fields[key]
	if !ok {
		return false, false
	}
	switch v := val.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// Float returns a numeric field. Integers and numeric strings are accepted.
func (c *Configuration) Float(key string) (float64, bool) {
	val, ok := c.Fields[key]
	if !ok {
		return 0, false
	}
	return ParseNumber(val)
}

// ParseNumber converts a decoded value to float64.
// It returns false instead of failing on unparsable input.
func ParseNumber(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
