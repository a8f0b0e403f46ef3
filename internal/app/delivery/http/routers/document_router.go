package routers

import (
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *controllers.DocumentController) {
	router.Get("/", documentController.List)
	router.Get("/summary", documentController.Summary)

	router.Route("/staging", func(r chi.Router) {
		r.Post("/", documentController.StageFiles)
		r.Get("/", documentController.ListStaged)
		r.Get("/progress", documentController.Progress)
		r.With(middlewares.InFlight(inFlightStep("upload_commit"))).Post("/commit", documentController.CommitUpload)
		r.Patch("/{fileID}", documentController.AssignCategory)
		r.Delete("/{fileID}", documentController.RemoveStagedFile)
	})
}
