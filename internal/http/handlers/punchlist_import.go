package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
	"github.com/yungbote/commissioning-backend/internal/services"
)

const (
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	templateFilename = "plantilla_punchlist.xlsx"

	codePayloadTooLarge = "payload_too_large"
)

type PunchImportHandler struct {
	importer services.PunchImportService
	maxBytes int64
}

// NewPunchImportHandler limits uploads to maxBytes; zero or less disables the limit.
func NewPunchImportHandler(importer services.PunchImportService, maxBytes int64) *PunchImportHandler {
	return &PunchImportHandler{importer: importer, maxBytes: maxBytes}
}

// POST /api/punchlist/cargar (multipart, field "file")
func (h *PunchImportHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RespondError(c, http.StatusRequestEntityTooLarge, codePayloadTooLarge, err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, codeInvalidRequest, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.RespondServiceError(c, apierr.Internal("open_upload_failed", err), "open_upload_failed")
		return
	}
	defer f.Close()

	res, err := h.importer.Import(c.Request.Context(), f)
	if err != nil {
		response.RespondServiceError(c, err, "import_failed")
		return
	}
	response.RespondOK(c, res)
}

// GET /api/punchlist/plantilla
func (h *PunchImportHandler) Template(c *gin.Context) {
	b, err := h.importer.Template()
	if err != nil {
		response.RespondServiceError(c, err, "template_failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+templateFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, b)
}
