package profile

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/utils"
	"strings"
)

type personalStep struct {
	Gender      string  `json:"gender" validate:"required"`
	DateOfBirth string  `json:"dateOfBirth" validate:"required,date"`
	BloodGroup  string  `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Height      float64 `json:"height" validate:"gte=0"`
	Weight      float64 `json:"weight" validate:"gte=0"`
}

type addressStep struct {
	City  string `json:"city" validate:"required"`
	State string `json:"state" validate:"required"`
}

type emergencyStep struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// applyStep copies the fields owned by step from input into form. Fields of
// other steps are ignored.
func applyStep(form *models.ProfileForm, step int, input *requests.SaveProfileStep) {
	switch step {
	case 1:
		form.Gender = input.Gender
		form.DateOfBirth = input.DateOfBirth
		form.BloodGroup = input.BloodGroup
		form.Height = input.Height
		form.Weight = input.Weight
	case 2:
		if input.Address != nil {
			form.Address = models.Address{
				Street:  input.Address.Street,
				City:    input.Address.City,
				State:   input.Address.State,
				PinCode: input.Address.PinCode,
				Country: input.Address.Country,
			}
		}
	case 3:
		if input.EmergencyContact != nil {
			form.EmergencyContact = models.EmergencyContact{
				Name:     input.EmergencyContact.Name,
				Phone:    input.EmergencyContact.Phone,
				Relation: input.EmergencyContact.Relation,
			}
		}
		form.MedicalConditions = input.MedicalConditions
		form.Allergies = input.Allergies
		form.Medications = input.Medications
	}
}

func validateStep(form *models.ProfileForm, step int) error {
	switch step {
	case 1:
		return utils.ValidateStruct(personalStep{
			Gender:      form.Gender,
			DateOfBirth: form.DateOfBirth,
			BloodGroup:  form.BloodGroup,
			Height:      form.Height,
			Weight:      form.Weight,
		})
	case 2:
		return utils.ValidateStruct(addressStep{City: form.Address.City, State: form.Address.State})
	case 3:
		return utils.ValidateStruct(emergencyStep{Name: form.EmergencyContact.Name, Phone: form.EmergencyContact.Phone})
	}
	return nil
}

// formFromUser prefills the wizard from what upstream already knows.
func formFromUser(user *models.UserProfile) models.ProfileForm {
	form := models.ProfileForm{}
	if user == nil || user.AdditionalDetails == nil {
		return form
	}
	details := user.AdditionalDetails
	form.Gender = details.Gender
	form.DateOfBirth = details.DateOfBirth
	form.BloodGroup = details.BloodGroup
	form.Height = details.Height
	form.Weight = details.Weight
	form.Address = details.Address
	form.EmergencyContact = details.EmergencyContact
	form.MedicalConditions = strings.Join(details.MedicalConditions, ", ")
	form.Allergies = strings.Join(details.Allergies, ", ")
	form.Medications = strings.Join(details.Medications, ", ")
	return form
}

func toUpstream(form models.ProfileForm) requests.UpdateMedicalProfile {
	return requests.UpdateMedicalProfile{
		Gender:      form.Gender,
		DateOfBirth: form.DateOfBirth,
		BloodGroup:  form.BloodGroup,
		Height:      form.Height,
		Weight:      form.Weight,
		Address: requests.ProfileAddress{
			Street:  form.Address.Street,
			City:    form.Address.City,
			State:   form.Address.State,
			PinCode: form.Address.PinCode,
			Country: form.Address.Country,
		},
		EmergencyContact: requests.ProfileEmergencyInfo{
			Name:     form.EmergencyContact.Name,
			Phone:    form.EmergencyContact.Phone,
			Relation: form.EmergencyContact.Relation,
		},
		MedicalConditions: utils.SplitCommaList(form.MedicalConditions),
		Allergies:         utils.SplitCommaList(form.Allergies),
		Medications:       utils.SplitCommaList(form.Medications),
		IsProfileComplete: true,
	}
}
