package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/audioguide/pkg/app"
	"github.com/ghuser/audioguide/services/exhibit/application/handlers"
	appsvcs "github.com/ghuser/audioguide/services/exhibit/application/services"
)

// ExhibitRoutes registers the manager-facing exhibit endpoints on the
// provided chi router. Mount inside the auth-protected group.
func ExhibitRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	base := a.Config.PublicBaseURL
	r.Group(func(r chi.Router) {
		r.Route("/exhibits", func(r chi.Router) {
			r.Get("/", handlers.NewGetExhibitsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostExhibitHandler(svcs).Execute)
			r.Get("/{itemNumber}", handlers.NewGetExhibitHandler(svcs, base).Execute)
			r.Get("/{itemNumber}/qr", handlers.NewGetQRHandler(svcs, base).Execute)
		})
	})
}

// VisitRoutes registers the public visitor endpoints. These must be mounted
// outside any auth middleware: a scanned QR code carries everything needed
// to resolve the item.
func VisitRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	h := handlers.NewVisitHandler(svcs)
	r.Route("/visit", func(r chi.Router) {
		r.Get("/{orgId}/{itemNumber}", h.ExecuteLegacy)
		r.Get("/{orgId}/{language}/{itemNumber}", h.Execute)
	})
}
