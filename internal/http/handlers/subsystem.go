package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type SubsystemHandler struct {
	subsystems services.SubsystemService
}

func NewSubsystemHandler(subsystems services.SubsystemService) *SubsystemHandler {
	return &SubsystemHandler{subsystems: subsystems}
}

type createSubsystemRequest struct {
	SystemID *uint  `form:"id_sistema" binding:"required"`
	Code     string `form:"codigo" binding:"required"`
	Name     string `form:"nombre" binding:"required"`
}

// POST /api/subsistemas
func (h *SubsystemHandler) CreateSubsystem(c *gin.Context) {
	var req createSubsystemRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.subsystems.Create(c.Request.Context(), *req.SystemID, req.Code, req.Name)
	if err != nil {
		response.RespondServiceError(c, err, "create_subsystem_failed")
		return
	}
	response.RespondOK(c, row)
}

// GET /api/subsistemas
func (h *SubsystemHandler) ListSubsystems(c *gin.Context) {
	rows, err := h.subsystems.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_subsystems_failed")
		return
	}
	response.RespondOK(c, rows)
}

// DELETE /api/subsistemas/:id
func (h *SubsystemHandler) DeleteSubsystem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.subsystems.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err, "delete_subsystem_failed")
		return
	}
	response.RespondMessage(c, "Subsistema eliminado correctamente")
}
