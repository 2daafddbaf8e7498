package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/http/response"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type ProtocolHandler struct {
	protocols services.ProtocolService
}

func NewProtocolHandler(protocols services.ProtocolService) *ProtocolHandler {
	return &ProtocolHandler{protocols: protocols}
}

type protocolCountersRequest struct {
	Universe *int `form:"universo" binding:"required"`
	Opened   *int `form:"aperturados" binding:"required"`
	Closed   *int `form:"cerrados" binding:"required"`
	Open     *int `form:"abiertos" binding:"required"`
	Aconex   *int `form:"aconex" binding:"required"`
}

func (r protocolCountersRequest) counters() types.ProtocolCounters {
	return types.ProtocolCounters{
		Universe: *r.Universe,
		Opened:   *r.Opened,
		Closed:   *r.Closed,
		Open:     *r.Open,
		Aconex:   *r.Aconex,
	}
}

type createProtocolRequest struct {
	SubsystemID  *uint `form:"id_subsistema" binding:"required"`
	AreaID       *uint `form:"id_area" binding:"required"`
	DisciplineID *uint `form:"id_disciplina" binding:"required"`
	Universe     *int  `form:"universo" binding:"required"`
	Opened       *int  `form:"aperturados" binding:"required"`
	Closed       *int  `form:"cerrados" binding:"required"`
	Open         *int  `form:"abiertos" binding:"required"`
	Aconex       *int  `form:"aconex" binding:"required"`
}

func (r createProtocolRequest) counters() types.ProtocolCounters {
	return protocolCountersRequest{
		Universe: r.Universe,
		Opened:   r.Opened,
		Closed:   r.Closed,
		Open:     r.Open,
		Aconex:   r.Aconex,
	}.counters()
}

// POST /api/protocolos
func (h *ProtocolHandler) CreateProtocol(c *gin.Context) {
	var req createProtocolRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.protocols.Create(c.Request.Context(), services.CreateProtocolInput{
		SubsystemID:  *req.SubsystemID,
		AreaID:       *req.AreaID,
		DisciplineID: *req.DisciplineID,
		Counters:     req.counters(),
	})
	if err != nil {
		response.RespondServiceError(c, err, "create_protocol_failed")
		return
	}
	response.RespondOK(c, row)
}

// PUT /api/protocolos/:id
func (h *ProtocolHandler) UpdateProtocol(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req protocolCountersRequest
	if !bindParams(c, &req) {
		return
	}
	row, err := h.protocols.UpdateCounters(c.Request.Context(), id, req.counters())
	if err != nil {
		response.RespondServiceError(c, err, "update_protocol_failed")
		return
	}
	response.RespondOK(c, row)
}

// GET /api/protocolos
func (h *ProtocolHandler) ListProtocols(c *gin.Context) {
	rows, err := h.protocols.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_protocols_failed")
		return
	}
	response.RespondOK(c, rows)
}
