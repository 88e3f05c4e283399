package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem with the loaded variables at once.
func (c Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) == 0 {
		errs = append(errs, fmt.Errorf("missing required env JWT_SECRET"))
	}
	if (c.ESUser == "") != (c.ESPassword == "") {
		errs = append(errs, fmt.Errorf("ES_USER and ES_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}
