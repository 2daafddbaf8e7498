package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v body=%s", err, rec.Body.String())
	}
	return env
}

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"api error", apierr.NotFound("area_not_found", "Área no encontrada."), http.StatusNotFound, "area_not_found", "Área no encontrada."},
		{"wrapped api error", fmt.Errorf("ctx: %w", apierr.Conflict("area_exists", "El área ya existe.")), http.StatusConflict, "area_exists", "El área ya existe."},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "fallback", apierr.MsgInternal},
		{"internal error hides cause", apierr.Internal("import_failed", errors.New("too many SQL variables")), http.StatusInternalServerError, "import_failed", apierr.MsgInternal},
		{"internal error with message", apierr.InternalWithMessage("import_failed", "Error al procesar el archivo Excel.", errors.New("pq: timeout")), http.StatusInternalServerError, "import_failed", "Error al procesar el archivo Excel."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			RespondServiceError(c, tc.err, "fallback")

			if rec.Code != tc.status {
				t.Fatalf("status: got=%d want=%d", rec.Code, tc.status)
			}
			env := decodeEnvelope(t, rec)
			if env.Error.Code != tc.code || env.Error.Message != tc.message {
				t.Fatalf("envelope: got=%+v", env.Error)
			}
			if len(c.Errors) != 1 {
				t.Fatalf("cause not attached for logging: %v", c.Errors)
			}
		})
	}
}

func TestRespondMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondMessage(c, "Sistema eliminado")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"mensaje":"Sistema eliminado"}` {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}
