package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ghuser/audioguide/pkg/auth"
	"github.com/ghuser/audioguide/pkg/errhttp"
	"github.com/ghuser/audioguide/pkg/httpx"
	appsvcs "github.com/ghuser/audioguide/services/exhibit/application/services"
)

const qrImageSize = 256 // px, square

// GetQRHandler renders the shareable QR code for an exhibit item. The code
// encodes the canonical visitor URL so the page a manager is looking at can
// be rescanned by anyone.
type GetQRHandler struct {
	svc     *appsvcs.Services
	baseURL string
}

// NewGetQRHandler returns a GetQRHandler. baseURL is the public host the
// encoded visitor URL is built on.
func NewGetQRHandler(svc *appsvcs.Services, baseURL string) *GetQRHandler {
	return &GetQRHandler{svc: svc, baseURL: baseURL}
}

// Execute renders a PNG QR code for the item's visitor URL.
//
//	@Summary		Exhibit item QR code
//	@Description	PNG QR code encoding the item's canonical visitor URL
//	@Tags			exhibits
//	@Produce		png
//	@Param			itemNumber	path		string	true	"Item number"
//	@Param			language	query		string	false	"Language variant to link; defaults to the primary variant"
//	@Success		200			{file}		binary
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/exhibits/{itemNumber}/qr [get]
func (h *GetQRHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	language := r.URL.Query().Get("language")
	if language == "" {
		language = detail.Primary.Language.String()
	}

	png, err := qrcode.Encode(visitURL(h.baseURL, orgID, language, number), qrcode.Medium, qrImageSize)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
