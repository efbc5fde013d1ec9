package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/audioguide/pkg/auth"
	"github.com/ghuser/audioguide/pkg/errhttp"
	"github.com/ghuser/audioguide/pkg/httpx"
	appsvcs "github.com/ghuser/audioguide/services/exhibit/application/services"
	"github.com/ghuser/audioguide/services/exhibit/domain/models"
)

// ExhibitResponse is the wire representation of one exhibit item.
type ExhibitResponse struct {
	OwnerID     string    `json:"owner_id"    example:"org_2x9aFqK"`
	ItemNumber  string    `json:"item_number" example:"42"`
	Language    string    `json:"language"    example:"en"`
	Title       string    `json:"title"       example:"Bronze Age Vase"`
	Description string    `json:"description" example:"Excavated in 1934 near…"`
	AudioURL    string    `json:"audio_url,omitempty" example:"https://cdn.example.com/vase-en.mp3"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name ExhibitResponse

// CatalogueResponse is returned by the catalogue list endpoint.
// Total counts the organization's items before filtering; Languages is the
// distinct language set of the unfiltered list, for the filter control.
type CatalogueResponse struct {
	Items     []ExhibitResponse `json:"items"`
	Total     int               `json:"total"     example:"12"`
	Languages []string          `json:"languages" example:"en,fr"`
} // @name CatalogueResponse

// GetExhibitsHandler handles GET /exhibits requests.
type GetExhibitsHandler struct {
	svc *appsvcs.Services
}

// NewGetExhibitsHandler returns a GetExhibitsHandler backed by the given services.
func NewGetExhibitsHandler(svc *appsvcs.Services) *GetExhibitsHandler {
	return &GetExhibitsHandler{svc: svc}
}

// Execute lists the caller organization's catalogue.
//
//	@Summary		List exhibit items
//	@Description	Lists the caller organization's items with optional search and language filters
//	@Tags			exhibits
//	@Produce		json
//	@Param			search		query		string	false	"Case-insensitive substring match on title, description, or item number"
//	@Param			language	query		string	false	"Exact language code, or 'all'"
//	@Success		200			{object}	CatalogueResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/exhibits [get]
func (h *GetExhibitsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	q := r.URL.Query()
	catalogue, err := h.svc.Exhibit.List(r.Context(), orgID, q.Get("search"), q.Get("language"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]ExhibitResponse, len(catalogue.Items))
	for i, item := range catalogue.Items {
		items[i] = toExhibitResponse(item)
	}
	httpx.JSON(w, http.StatusOK, CatalogueResponse{
		Items:     items,
		Total:     catalogue.Total,
		Languages: catalogue.Languages,
	})
}

// toExhibitResponse maps a domain item to its wire representation.
func toExhibitResponse(item *models.ExhibitItem) ExhibitResponse {
	return ExhibitResponse{
		OwnerID:     item.OwnerID,
		ItemNumber:  item.Number.String(),
		Language:    item.Language.String(),
		Title:       item.Title,
		Description: item.Description,
		AudioURL:    item.AudioURL,
		CreatedAt:   item.CreatedAt,
	}
}
