package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrewpaige1/panelverse-api/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// PointInput is a polygon vertex as received on the wire. Both coordinates are
// pointers so a missing coordinate is told apart from zero.
type PointInput struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// Points converts validated input to stored points.
func Points(in []PointInput) []models.Point {
	points := make([]models.Point, len(in))
	for i, p := range in {
		points[i] = models.Point{X: *p.X, Y: *p.Y}
	}
	return points
}

type positionInput struct {
	Position []PointInput `json:"position" validate:"required,min=3,dive"`
}

// ValidatePosition checks that a hook polygon has at least three points with numeric x and y.
func ValidatePosition(points []PointInput) error {
	return validateStruct(positionInput{Position: points})
}

// ValidatePanelIndex checks that i addresses one of the panels of a set.
func ValidatePanelIndex(i int) error {
	if i < 0 || i >= models.PanelsPerSet {
		return validationError("invalid panel_index %d: must be between 0 and %d", i, models.PanelsPerSet-1)
	}
	return nil
}

// firstError returns the first failed check.
func firstError(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// validateStruct runs the validate tags of s and folds every failure into a single ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	collection := false
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		collection = true
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "len":
		if collection {
			return fmt.Sprintf("%s must contain exactly %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "min":
		if collection {
			return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if collection {
			return fmt.Sprintf("%s must contain at most %s entries", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
