//go:build tinygo || !cgo

package glcheck

import "errors"

var errNoCGO = errors.New("glcheck: GPU validation requires CGo and is not supported on TinyGo")

// Validate compiles and links the program made up of the compiled stages.
// Without CGo it checks stage keys and then returns an error.
func Validate(code map[string]string) error {
	return ValidateWithConfig(code, Config{})
}

// ValidateWithConfig is like [Validate] with a custom context configuration.
func ValidateWithConfig(code map[string]string, cfg Config) error {
	if _, _, _, err := splitStages(code); err != nil {
		return err
	}
	return errNoCGO
}
