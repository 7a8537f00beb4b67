package validators

import (
	"sync"

	validators "github.com/Rfluid/whatsapp-cloud-api/src/validators"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidators() {
	once.Do(func() {
		validate = validator.New()

		validators.RegisterAllValidators(validate)
		// Rejects whitespace-only strings, which "required" lets through.
		_ = validate.RegisterValidation("notblank", nonstandard.NotBlank)
	})
}

// Export validate to use in handlers
func Validator() *validator.Validate {
	InitValidators()
	return validate
}
