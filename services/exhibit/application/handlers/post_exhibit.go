package handlers

import (
	"net/http"

	"github.com/ghuser/audioguide/pkg/auth"
	"github.com/ghuser/audioguide/pkg/errhttp"
	"github.com/ghuser/audioguide/pkg/httpx"
	pkgvalidator "github.com/ghuser/audioguide/pkg/validator"
	appsvcs "github.com/ghuser/audioguide/services/exhibit/application/services"
)

// CreateExhibitRequest is the request body for POST /exhibits.
// The owner is never part of the payload; it comes from the session.
type CreateExhibitRequest struct {
	ItemNumber  string `json:"item_number" validate:"required,max=64"           example:"42"`
	Language    string `json:"language"    validate:"omitempty,min=2,max=8,lowercase" example:"en"`
	Title       string `json:"title"       validate:"required,max=255"          example:"Bronze Age Vase"`
	Description string `json:"description" validate:"required"                  example:"Excavated in 1934 near…"`
	AudioURL    string `json:"audio_url"   validate:"omitempty,url"             example:"https://cdn.example.com/vase-en.mp3"`
} // @name CreateExhibitRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"exhibit item already exists"`
} // @name ErrorResponse

// PostExhibitHandler handles POST /exhibits requests.
type PostExhibitHandler struct {
	svc *appsvcs.Services
}

// NewPostExhibitHandler returns a PostExhibitHandler backed by the given services.
func NewPostExhibitHandler(svc *appsvcs.Services) *PostExhibitHandler {
	return &PostExhibitHandler{svc: svc}
}

// Execute creates a new exhibit item.
//
//	@Summary		Create exhibit item
//	@Description	Creates a new exhibit item scoped to the caller's organization
//	@Tags			exhibits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateExhibitRequest	true	"Exhibit item creation request"
//	@Success		201		{object}	ExhibitResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/exhibits [post]
func (h *PostExhibitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateExhibitRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Exhibit.Create(r.Context(), orgID, appsvcs.CreateExhibitInput{
		Number:      req.ItemNumber,
		Language:    req.Language,
		Title:       req.Title,
		Description: req.Description,
		AudioURL:    req.AudioURL,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toExhibitResponse(item))
}
