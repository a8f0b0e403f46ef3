package responses

import "arogyanetra-service/internal/app/models"

type Login struct {
	Token     string              `json:"token"`
	User      *models.UserProfile `json:"user"`
	NextRoute string              `json:"next_route"`
}

type Me struct {
	User      *models.UserProfile `json:"user"`
	NextRoute string              `json:"next_route"`
}
