package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type PunchListHandler struct {
	punch services.PunchListService
}

func NewPunchListHandler(punch services.PunchListService) *PunchListHandler {
	return &PunchListHandler{punch: punch}
}

// GET /api/punchlist?id_subsistema=
func (h *PunchListHandler) ListItems(c *gin.Context) {
	filter, ok := punchFilter(c)
	if !ok {
		return
	}
	rows, err := h.punch.List(c.Request.Context(), filter)
	if err != nil {
		response.RespondServiceError(c, err, "list_punchlist_failed")
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/punchlist/disciplinas
func (h *PunchListHandler) ListDisciplines(c *gin.Context) {
	filter, ok := punchFilter(c)
	if !ok {
		return
	}
	rows, err := h.punch.Disciplines(c.Request.Context(), filter)
	if err != nil {
		response.RespondServiceError(c, err, "list_punch_disciplines_failed")
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/punchlist/totales
func (h *PunchListHandler) Totals(c *gin.Context) {
	filter, ok := punchFilter(c)
	if !ok {
		return
	}
	out, err := h.punch.Totals(c.Request.Context(), filter)
	if err != nil {
		response.RespondServiceError(c, err, "punch_totals_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/punchlist/por-categoria
func (h *PunchListHandler) ByCategory(c *gin.Context) {
	filter, ok := punchFilter(c)
	if !ok {
		return
	}
	out, err := h.punch.ByCategory(c.Request.Context(), filter)
	if err != nil {
		response.RespondServiceError(c, err, "punch_by_category_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/punchlist/por-disciplina
func (h *PunchListHandler) ByDiscipline(c *gin.Context) {
	filter, ok := punchFilter(c)
	if !ok {
		return
	}
	out, err := h.punch.ByDiscipline(c.Request.Context(), filter)
	if err != nil {
		response.RespondServiceError(c, err, "punch_by_discipline_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/punchlist/avance
func (h *PunchListHandler) Progress(c *gin.Context) {
	filter, ok := punchFilter(c)
	if !ok {
		return
	}
	out, err := h.punch.Progress(c.Request.Context(), filter)
	if err != nil {
		response.RespondServiceError(c, err, "punch_progress_failed")
		return
	}
	response.RespondOK(c, out)
}
