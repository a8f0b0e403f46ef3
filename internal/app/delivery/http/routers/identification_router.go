package routers

import (
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachIdentificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, identificationController *controllers.IdentificationController) {
	router.With(middlewares.LimitFaceScan, middlewares.InFlight(inFlightStep("identify"))).Post("/facescan", identificationController.FaceScan)
	router.With(middlewares.InFlight(inFlightStep("identify"))).Post("/qrscan", identificationController.QRScan)
	router.Get("/search", identificationController.Search)
	router.Get("/current", identificationController.Current)
	router.Delete("/current", identificationController.Clear)
}
