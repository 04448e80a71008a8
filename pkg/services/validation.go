// Package services contains the business logic of the admin engine:
// the registration approval workflow, CRUD over the directory
// collections, dashboard statistics, notifications and announcement
// drafting.
package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/investplus/admin-engine/pkg/apperrors"
)

var validate = validator.New()

// validateStruct runs the declared presence checks on a record before it
// is allowed anywhere near the gateway. Failures are reported as
// apperrors.ErrValidation with the first offending field named.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("%w: field %s failed %q check",
			apperrors.ErrValidation, f.Field(), f.Tag())
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}
