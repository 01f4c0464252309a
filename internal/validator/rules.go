package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.ValidRole(models.UserRole(fl.Field().String()))
}
