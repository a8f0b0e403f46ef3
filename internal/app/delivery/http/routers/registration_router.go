package routers

import (
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRegistrationRoutes(router chi.Router, middlewares *middlewares.Middlewares, registrationController *controllers.RegistrationController) {
	router.Post("/identity", registrationController.SubmitIdentity)

	router.Route("/{draftID}", func(r chi.Router) {
		r.Get("/", registrationController.Status)
		r.Delete("/", registrationController.Abandon)
		r.With(middlewares.InFlight(inFlightStep("otp_resend"))).Post("/otp/resend", registrationController.ResendOTP)
		r.With(middlewares.InFlight(inFlightStep("otp_verify"))).Post("/otp/verify", registrationController.VerifyOTP)
		r.With(middlewares.InFlight(inFlightStep("signup"))).Post("/complete", registrationController.CompleteSignup)
	})
}
