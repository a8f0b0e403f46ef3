package models

import (
	"arogyanetra-service/internal/pkg/constvars"
	"strings"
)

type UserProfile struct {
	ID                string             `json:"id"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Email             string             `json:"email"`
	Mobile            string             `json:"mobile"`
	AccountType       string             `json:"accountType"`
	Image             string             `json:"image,omitempty"`
	AadharNumber      string             `json:"aadharNumber,omitempty"`
	ArogyaNetraCard   *ArogyaNetraCard   `json:"arogyaNetraCard,omitempty"`
	AdditionalDetails *AdditionalDetails `json:"additionalDetails,omitempty"`
}

type ArogyaNetraCard struct {
	CardID    string `json:"cardId"`
	IssueDate string `json:"issueDate"`
	Status    string `json:"status,omitempty"`
}

type AdditionalDetails struct {
	Gender            string           `json:"gender"`
	DateOfBirth       string           `json:"dateOfBirth"`
	BloodGroup        string           `json:"bloodGroup"`
	Height            float64          `json:"height,omitempty"`
	Weight            float64          `json:"weight,omitempty"`
	Address           Address          `json:"address"`
	EmergencyContact  EmergencyContact `json:"emergencyContact"`
	MedicalConditions []string         `json:"medicalConditions"`
	Allergies         []string         `json:"allergies"`
	Medications       []string         `json:"medications"`
	IsProfileComplete bool             `json:"isProfileComplete"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation,omitempty"`
}

func (u *UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *UserProfile) IsPatient() bool {
	return u.AccountType == constvars.AccountTypeUser
}

func (u *UserProfile) IsProfileComplete() bool {
	return u.AdditionalDetails != nil && u.AdditionalDetails.IsProfileComplete
}

func (u *UserProfile) HasCard() bool {
	return u.ArogyaNetraCard != nil && u.ArogyaNetraCard.CardID != ""
}

// LandingRoute is the browser route a user lands on after login.
func (u *UserProfile) LandingRoute() string {
	if !u.IsPatient() {
		return constvars.RouteProfessionalDashboard
	}
	if !u.IsProfileComplete() {
		return constvars.RouteCompleteProfile
	}
	return constvars.RouteUserDashboard
}
