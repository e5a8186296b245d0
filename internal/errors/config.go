package errors

import (
	"fmt"
	"strings"
)

// configFile is where "bingocard init" writes the configuration.
const configFile = ".bingocard/config.yaml"

// ConfigNotFound reports an explicitly requested config file that does not
// exist. The default location is optional and never produces this error.
func ConfigNotFound(path string) *BingoError {
	e := New(ErrConfig, "configuration file not found: "+path).WithDetails("path", path)
	e.Suggestion = "Run 'bingocard init' to write " + configFile +
		", or drop --config to use defaults and flags."
	return e
}

// ConfigParseError reports a config file that could not be read or decoded.
func ConfigParseError(path string, err error) *BingoError {
	e := Wrap(err, ErrConfig, "failed to parse configuration: "+path).WithDetails("path", path)
	e.Suggestion = strings.Join([]string{
		"Check the file for YAML syntax errors:",
		"  - indent with spaces, not tabs",
		"  - look for missing colons or unbalanced quotes",
		`  - "people" must be a list or a comma-separated string`,
	}, "\n")
	return e
}

// ConfigValidationError reports one invalid field. options, when given,
// lists the accepted values.
func ConfigValidationError(field, message string, options []string) *BingoError {
	e := New(ErrConfig, "invalid configuration: "+message).WithDetails("field", field)
	e.Suggestion = fmt.Sprintf("Fix %q in %s or pass the matching flag.", field, configFile)
	if len(options) > 0 {
		e.Suggestion += "\n  Valid options: " + strings.Join(options, ", ")
	}
	return e
}
