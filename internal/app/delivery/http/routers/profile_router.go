package routers

import (
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Route("/wizard", func(r chi.Router) {
		r.Get("/", profileController.GetWizard)
		r.With(middlewares.InFlight(inFlightStep("wizard_step"))).Put("/steps/{step}", profileController.SaveStep)
		r.With(middlewares.InFlight(inFlightStep("wizard_step"))).Post("/back", profileController.Back)
		r.With(middlewares.InFlight(inFlightStep("wizard_submit"))).Post("/submit", profileController.Submit)
	})
}
