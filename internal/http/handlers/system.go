package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type SystemHandler struct {
	systems services.SystemService
}

func NewSystemHandler(systems services.SystemService) *SystemHandler {
	return &SystemHandler{systems: systems}
}

type createSystemRequest struct {
	Code string `form:"codigo" binding:"required"`
	Name string `form:"nombre" binding:"required"`
}

// POST /api/sistemas
func (h *SystemHandler) CreateSystem(c *gin.Context) {
	var req createSystemRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.systems.Create(c.Request.Context(), req.Code, req.Name)
	if err != nil {
		response.RespondServiceError(c, err, "create_system_failed")
		return
	}
	response.RespondOK(c, row)
}

// GET /api/sistemas
func (h *SystemHandler) ListSystems(c *gin.Context) {
	rows, err := h.systems.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_systems_failed")
		return
	}
	response.RespondOK(c, rows)
}

type updateSystemRequest struct {
	Name string `form:"nombre" binding:"required"`
}

// PUT /api/sistemas/:id
func (h *SystemHandler) UpdateSystem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateSystemRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.systems.UpdateName(c.Request.Context(), id, req.Name)
	if err != nil {
		response.RespondServiceError(c, err, "update_system_failed")
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/sistemas/:id
func (h *SystemHandler) DeleteSystem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.systems.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err, "delete_system_failed")
		return
	}
	response.RespondMessage(c, "Sistema eliminado")
}
