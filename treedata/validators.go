// Package treedata provides validation helpers that enforce the Config and
// level-set contracts before any sampling happens.
//
// Field rules live in `validate` struct tags and are checked with
// go-playground/validator; every failure is translated into *ValidationError.
package treedata

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// levelsRule: at least one level; each level non-empty with distinct,
// non-empty labels.
const levelsRule = "required,min=1,dive,min=1,unique,dive,required"

// configValidate is the validator instance for Config.
// Field names are reported by their yaml key.
var configValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the whole config: levels first, then periods and range.
// Complexity: O(N_labels + P) time.
func (c Config) Validate() error {
	if err := validateLevels(c.Levels); err != nil {
		return err
	}
	if err := configValidate.Struct(c); err != nil {
		return toValidationError("", err)
	}
	// max-min+1 feeds Int63n; it must stay positive.
	if span := c.Range.Max - c.Range.Min; span < 0 || span == math.MaxInt64 {
		return &ValidationError{Field: "range", Reason: "span does not fit in int64"}
	}

	return validateMagnitude(c)
}

// validateMagnitude keeps every sibling-group sum, forecast and rescaled
// value within ±MaxSafeMagnitude, so scale = constraint/sum is computed from
// an exact sum. Requires validated levels and Min <= Max.
func validateMagnitude(c Config) error {
	if c.Constraint > MaxSafeMagnitude || c.Constraint < -MaxSafeMagnitude {
		return &ValidationError{Field: "constraint",
			Reason: fmt.Sprintf("must be within ±%d", MaxSafeMagnitude)}
	}
	if c.Range.Min < -MaxSafeMagnitude || c.Range.Max > MaxSafeMagnitude {
		return &ValidationError{Field: "range",
			Reason: fmt.Sprintf("bounds must be within ±%d", MaxSafeMagnitude)}
	}

	widest := 0
	for _, level := range c.Levels {
		widest = max(widest, len(level))
	}
	m := max(absInt64(c.Range.Min), absInt64(c.Range.Max))

	// forecast can exceed plan by ForecastSpread; a group sums widest of them
	limit := float64(MaxSafeMagnitude) / (float64(widest) * (1 + ForecastSpread))
	if float64(m) > limit {
		return &ValidationError{Field: "range",
			Reason: fmt.Sprintf("|bound| %d over %d siblings exceeds %d", m, widest, MaxSafeMagnitude)}
	}

	// Mixed signs let a group sum approach 1, so scale reaches |constraint|.
	if c.Range.Min < 0 && c.Range.Max > 0 &&
		float64(m)*(1+ForecastSpread)*float64(absInt64(c.Constraint)) > float64(MaxSafeMagnitude) {
		return &ValidationError{Field: "range",
			Reason: fmt.Sprintf("mixed-sign bound %d times constraint %d exceeds %d", m, c.Constraint, MaxSafeMagnitude)}
	}

	return nil
}

// validateLevels enforces the level-set contract shared by GenerateTree and
// EnumeratePaths.
func validateLevels(levels [][]string) error {
	if err := configValidate.Var(levels, levelsRule); err != nil {
		return toValidationError("levels", err)
	}

	return nil
}

// toValidationError converts the first validator failure into *ValidationError.
// prefix names the validated variable when validating with Var.
func toValidationError(prefix string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: prefix, Reason: err.Error()}
	}
	fe := fieldErrs[0]

	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); prefix == "" && i >= 0 {
		// drop the "Config." root
		field = field[i+1:]
	}
	field = prefix + field

	return &ValidationError{Field: field, Reason: describeRule(fe)}
}

// describeRule renders a validator tag as a short human reason.
func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "must not be empty"
	case "unique":
		return "must not contain duplicates"
	case "gtefield":
		return "must be >= " + strings.ToLower(fe.Param())
	default:
		return "failed rule " + fe.Tag()
	}
}
