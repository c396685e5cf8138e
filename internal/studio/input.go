package studio

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"studio-listing-backend/internal/store"
)

// Input is the request body accepted by create and full update.
type Input struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	PricePerHour *float64 `json:"pricePerHour"`
	ImageURL     *string  `json:"imageUrl"`
	ContactEmail *string  `json:"contactEmail"`
	ContactPhone *string  `json:"contactPhone"`
	IsAvailable  *bool    `json:"isAvailable"`
}

// Draft converts the input into the store's field set. A missing
// isAvailable means true.
func (in Input) Draft() store.Draft {
	d := store.Draft{
		Name:         in.Name,
		Description:  in.Description,
		Location:     in.Location,
		ImageURL:     in.ImageURL,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		IsAvailable:  true,
	}
	if in.PricePerHour != nil {
		d.PricePerHour = *in.PricePerHour
	}
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	return d
}

// Violation is one failed constraint on an input field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field of an Input that failed validation.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// rules mirrors Input with optional strings flattened, so an empty
// contactEmail is skipped like an absent one.
type rules struct {
	Name         string   `json:"name" validate:"notblank,max=255"`
	Description  string   `json:"description" validate:"notblank,max=2000"`
	Location     string   `json:"location" validate:"notblank,max=255"`
	PricePerHour *float64 `json:"pricePerHour" validate:"required,gt=0"`
	ContactEmail string   `json:"contactEmail" validate:"omitempty,max=255,email"`
}

var messages = map[string]string{
	"name.notblank":         "Studio name is required",
	"name.max":              "Studio name must not exceed 255 characters",
	"description.notblank":  "Studio description is required",
	"description.max":       "Description must not exceed 2000 characters",
	"location.notblank":     "Studio location is required",
	"location.max":          "Location must not exceed 255 characters",
	"pricePerHour.required": "Studio price is required",
	"pricePerHour.gt":       "Price must be greater than 0",
	"contactEmail.email":    "Invalid email format",
	"contactEmail.max":      "Email must not exceed 255 characters",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the input against the studio constraints and returns
// the violations in field order; nil means valid.
func Validate(in Input) []Violation {
	r := rules{
		Name:         in.Name,
		Description:  in.Description,
		Location:     in.Location,
		PricePerHour: in.PricePerHour,
	}
	if in.ContactEmail != nil {
		r.ContactEmail = *in.ContactEmail
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on %s", fe.Tag())
		}
		violations = append(violations, Violation{Field: fe.Field(), Message: msg})
	}
	return violations
}
