package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type DisciplineHandler struct {
	disciplines services.DisciplineService
}

func NewDisciplineHandler(disciplines services.DisciplineService) *DisciplineHandler {
	return &DisciplineHandler{disciplines: disciplines}
}

type createDisciplineRequest struct {
	Name string `form:"nombre" binding:"required"`
}

// POST /api/disciplinas
func (h *DisciplineHandler) CreateDiscipline(c *gin.Context) {
	var req createDisciplineRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.disciplines.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.RespondServiceError(c, err, "create_discipline_failed")
		return
	}
	response.RespondOK(c, row)
}

// GET /api/disciplinas
func (h *DisciplineHandler) ListDisciplines(c *gin.Context) {
	rows, err := h.disciplines.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_disciplines_failed")
		return
	}
	response.RespondOK(c, rows)
}
