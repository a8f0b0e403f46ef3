package utils

import (
	"arogyanetra-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func capitalizeFirstLetter(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeRegisterIdentityRequest(input *requests.RegisterIdentity) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.MobileNo = digitsOnly(input.MobileNo)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.ContactType = strings.ToLower(strings.TrimSpace(input.ContactType))
	input.UserType = capitalizeFirstLetter(strings.ToLower(strings.TrimSpace(input.UserType)))
}

func SanitizeVerifyOTPRequest(input *requests.VerifyOTP) {
	input.DraftID = strings.TrimSpace(input.DraftID)
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeSaveProfileStepRequest(input *requests.SaveProfileStep) {
	input.Gender = strings.TrimSpace(input.Gender)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
	if input.Address != nil {
		input.Address.Street = strings.TrimSpace(input.Address.Street)
		input.Address.City = strings.TrimSpace(input.Address.City)
		input.Address.State = strings.TrimSpace(input.Address.State)
		input.Address.PinCode = strings.TrimSpace(input.Address.PinCode)
		input.Address.Country = strings.TrimSpace(input.Address.Country)
	}
	if input.EmergencyContact != nil {
		input.EmergencyContact.Name = strings.TrimSpace(input.EmergencyContact.Name)
		input.EmergencyContact.Phone = strings.TrimSpace(input.EmergencyContact.Phone)
		input.EmergencyContact.Relation = strings.TrimSpace(input.EmergencyContact.Relation)
	}
}

func SanitizeAssignCategoryRequest(input *requests.AssignCategory) {
	input.FileID = strings.TrimSpace(input.FileID)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
}

func SanitizeDocumentQuery(input *requests.DocumentQuery) {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = strings.TrimSpace(input.Type)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	input.SortBy = strings.ToLower(strings.TrimSpace(input.SortBy))
	input.Order = strings.ToLower(strings.TrimSpace(input.Order))
	input.View = strings.ToLower(strings.TrimSpace(input.View))
}

func SanitizeQRScanRequest(input *requests.QRScan) {
	input.QRData = strings.TrimSpace(input.QRData)
}

func SanitizeCardSearchRequest(input *requests.CardSearch) {
	input.Query = strings.TrimSpace(input.Query)
}

func SanitizeStringList(input []string) []string {
	sanitized := make([]string, len(input))
	for i, v := range input {
		sanitized[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return sanitized
}
