package schemavalidator

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
)

var (
	v    *validator.Validate
	once sync.Once
)

// V returns the process-wide validator with the custom tags registered.
func V() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		_ = v.RegisterValidation("primitiveKind", primitiveKindValidator)
		_ = v.RegisterValidation("regexPattern", regexPatternValidator)
		_ = v.RegisterValidation("notBlank", notBlankValidator)
	})
	return v
}

// primitiveKindValidator checks that the value names a supported primitive kind.
func primitiveKindValidator(fl validator.FieldLevel) bool {
	return types.PrimitiveKind(fl.Field().String()).IsValid()
}

// regexPatternValidator checks that the value compiles as a regular expression.
func regexPatternValidator(fl validator.FieldLevel) bool {
	_, err := regexp.Compile(fl.Field().String())
	return err == nil
}

func notBlankValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
