package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/audioguide/pkg/auth"
	"github.com/ghuser/audioguide/pkg/errhttp"
	"github.com/ghuser/audioguide/pkg/httpx"
	appsvcs "github.com/ghuser/audioguide/services/exhibit/application/services"
)

// ExhibitDetailResponse is returned by the manager detail endpoint. Item is
// the deterministic primary variant; Variants holds every language variant
// sharing the item number. VisitURL is the canonical shareable visitor link
// the QR code encodes.
type ExhibitDetailResponse struct {
	Item     ExhibitResponse   `json:"item"`
	Variants []ExhibitResponse `json:"variants"`
	VisitURL string            `json:"visit_url" example:"https://guide.example.com/visit/org_2x9aFqK/en/42"`
} // @name ExhibitDetailResponse

// GetExhibitHandler handles GET /exhibits/{itemNumber} requests.
type GetExhibitHandler struct {
	svc     *appsvcs.Services
	baseURL string
}

// NewGetExhibitHandler returns a GetExhibitHandler. baseURL is the public
// host visitor links are built on.
func NewGetExhibitHandler(svc *appsvcs.Services, baseURL string) *GetExhibitHandler {
	return &GetExhibitHandler{svc: svc, baseURL: baseURL}
}

// Execute resolves one item for a manager.
//
//	@Summary		Get exhibit item
//	@Description	Resolves an item number to its language variants for the caller's organization
//	@Tags			exhibits
//	@Produce		json
//	@Param			itemNumber	path		string	true	"Item number"
//	@Success		200			{object}	ExhibitDetailResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/exhibits/{itemNumber} [get]
func (h *GetExhibitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	number := chi.URLParam(r, "itemNumber")
	detail, err := h.svc.Exhibit.GetByNumber(r.Context(), orgID, number)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	variants := make([]ExhibitResponse, len(detail.Variants))
	for i, v := range detail.Variants {
		variants[i] = toExhibitResponse(v)
	}
	httpx.JSON(w, http.StatusOK, ExhibitDetailResponse{
		Item:     toExhibitResponse(detail.Primary),
		Variants: variants,
		VisitURL: visitURL(h.baseURL, orgID, detail.Primary.Language.String(), number),
	})
}

// visitURL builds the canonical visitor link: <base>/visit/<org>/<language>/<number>.
func visitURL(base, orgID, language, number string) string {
	return fmt.Sprintf("%s/visit/%s/%s/%s", base, orgID, language, number)
}
