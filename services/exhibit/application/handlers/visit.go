package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/audioguide/pkg/errhttp"
	"github.com/ghuser/audioguide/pkg/httpx"
	appsvcs "github.com/ghuser/audioguide/services/exhibit/application/services"
	"github.com/ghuser/audioguide/services/exhibit/domain/models"
)

// VisitHandler handles the unauthenticated visitor lookup reached from a
// scanned QR code. The org, item number, and optional language come entirely
// from the URL path; no session is consulted.
type VisitHandler struct {
	svc *appsvcs.Services
}

// NewVisitHandler returns a VisitHandler backed by the given services.
func NewVisitHandler(svc *appsvcs.Services) *VisitHandler {
	return &VisitHandler{svc: svc}
}

// Execute resolves a visitor URL with an explicit language segment.
//
//	@Summary		Visit exhibit item
//	@Description	Public, unauthenticated lookup of one exhibit item by its shared URL
//	@Tags			visit
//	@Produce		json
//	@Param			orgId		path		string	true	"Organization ID"
//	@Param			language	path		string	true	"Language code"
//	@Param			itemNumber	path		string	true	"Item number"
//	@Success		200			{object}	ExhibitResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/visit/{orgId}/{language}/{itemNumber} [get]
func (h *VisitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, chi.URLParam(r, "language"))
}

// ExecuteLegacy resolves the older two-segment visitor URL, defaulting the
// language. Kept so QR codes printed before the language segment existed
// still work.
//
//	@Summary		Visit exhibit item (legacy URL)
//	@Description	Public lookup without a language segment; defaults to "en"
//	@Tags			visit
//	@Produce		json
//	@Param			orgId		path		string	true	"Organization ID"
//	@Param			itemNumber	path		string	true	"Item number"
//	@Success		200			{object}	ExhibitResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/visit/{orgId}/{itemNumber} [get]
func (h *VisitHandler) ExecuteLegacy(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, models.DefaultLanguage.String())
}

func (h *VisitHandler) resolve(w http.ResponseWriter, r *http.Request, language string) {
	item, err := h.svc.Exhibit.ResolveVisit(
		r.Context(),
		chi.URLParam(r, "orgId"),
		chi.URLParam(r, "itemNumber"),
		language,
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toExhibitResponse(item))
}
