package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/http/response"
)

const codeInvalidRequest = "invalid_request"

var errInvalidID = errors.New("id must be a positive integer")

// bindParams reads query-string and form-body parameters into req. On failure
// it writes the 400 response and reports false.
func bindParams(c *gin.Context, req any) bool {
	if err := c.ShouldBindWith(req, binding.Form); err != nil {
		response.RespondError(c, http.StatusBadRequest, codeInvalidRequest, err)
		return false
	}
	return true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, codeInvalidRequest, errInvalidID)
		return 0, false
	}
	return uint(id), true
}

type punchFilterRequest struct {
	SubsystemID *uint `form:"id_subsistema"`
}

func punchFilter(c *gin.Context) (types.PunchFilter, bool) {
	var req punchFilterRequest
	if !bindParams(c, &req) {
		return types.PunchFilter{}, false
	}
	f := types.PunchFilter{}
	if req.SubsystemID != nil {
		f.SubsystemID = *req.SubsystemID
	}
	return f, true
}
