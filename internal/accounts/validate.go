package accounts

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*]`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// mirrors the password checklist shown on the change-password screen
	if err := v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return passwordMeetsPolicy(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func passwordMeetsPolicy(password string) bool {
	return len(password) >= 8 &&
		upperPattern.MatchString(password) &&
		lowerPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		specialPattern.MatchString(password)
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "eqfield":
		return "must match " + fe.Param()
	case "strongpwd":
		return "must be 8+ chars with upper, lower, digit and special character"
	}
	return "is invalid"
}
