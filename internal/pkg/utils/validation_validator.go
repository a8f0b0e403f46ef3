package utils

import (
	"arogyanetra-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	mobileNumberRegex = regexp.MustCompile(constvars.RegexMobileNumber)
	cardIDRegex       = regexp.MustCompile(constvars.CardIDPattern)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("mobile_no", validateMobileNumber)
	validate.RegisterValidation("card_id", validateCardID)
	validate.RegisterValidation("contact_type", validateContactType)
	validate.RegisterValidation("account_type", validateAccountType)
	validate.RegisterValidation("date", validateLayout("2006-01-02"))
	validate.RegisterValidation("month", validateLayout("2006-01"))
	validate.RegisterValidation("year", validateLayout("2006"))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsCardID(value string) bool {
	return cardIDRegex.MatchString(value)
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	return mobileNumberRegex.MatchString(fl.Field().String())
}

func validateCardID(fl validator.FieldLevel) bool {
	return IsCardID(fl.Field().String())
}

func validateContactType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ContactTypeEmail, constvars.ContactTypeSMS, constvars.ContactTypeWhatsApp:
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.AccountTypeUser, constvars.AccountTypeDoctor, constvars.AccountTypeAdmin:
		return true
	}
	return false
}

func validateLayout(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}
