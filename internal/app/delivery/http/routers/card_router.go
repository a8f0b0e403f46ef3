package routers

import (
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCardRoutes(router chi.Router, middlewares *middlewares.Middlewares, cardController *controllers.CardController) {
	router.Route("/me", func(r chi.Router) {
		r.Get("/", cardController.GetCard)
		r.Get("/qr.png", cardController.QRCode)
		r.With(middlewares.InFlight(inFlightStep("card_export"))).Get("/export.png", cardController.ExportImage)
		r.With(middlewares.InFlight(inFlightStep("card_export"))).Post("/export", cardController.ExportLink)
	})
}
