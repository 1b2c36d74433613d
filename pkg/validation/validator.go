package validation

import (
	"reflect"

	"gearguard/internal/entities"

	"github.com/go-playground/validator/v10"
)

// New builds the validator instance used by the HTTP layer: null-type
// awareness plus the domain rules the tag language cannot express.
func New() (*validator.Validate, error) {
	v := validator.New()
	registerNullTypes(v)
	if err := v.RegisterValidation("frequency_logic", recurringRequiresFrequency); err != nil {
		return nil, err
	}
	return v, nil
}

// recurringRequiresFrequency enforces: is_recurring => frequency != None.
// A non-recurring request may still carry a frequency; it is
// informational only and no schedule is generated from it.
func recurringRequiresFrequency(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	recurring := parent.FieldByName("IsRecurring")
	if !recurring.IsValid() || recurring.Kind() != reflect.Bool || !recurring.Bool() {
		return true
	}

	freq := fl.Field().String()
	return freq != "" && freq != entities.FrequencyNone
}
