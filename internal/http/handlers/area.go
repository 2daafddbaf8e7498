package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type AreaHandler struct {
	areas services.AreaService
}

func NewAreaHandler(areas services.AreaService) *AreaHandler {
	return &AreaHandler{areas: areas}
}

type createAreaRequest struct {
	Name string `form:"nombre" binding:"required"`
}

// POST /api/areas
func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req createAreaRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.areas.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.RespondServiceError(c, err, "create_area_failed")
		return
	}
	response.RespondOK(c, row)
}

// GET /api/areas
func (h *AreaHandler) ListAreas(c *gin.Context) {
	rows, err := h.areas.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_areas_failed")
		return
	}
	response.RespondOK(c, rows)
}

// DELETE /api/areas/:id
func (h *AreaHandler) DeleteArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.areas.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err, "delete_area_failed")
		return
	}
	response.RespondMessage(c, "Área eliminada")
}
