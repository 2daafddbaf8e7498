package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type fakeSystemService struct {
	created []string
	err     error
}

func (f *fakeSystemService) Create(_ context.Context, code, name string) (*types.System, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, code)
	return &types.System{ID: 1, Code: code, Name: name}, nil
}

func (f *fakeSystemService) List(context.Context) ([]*types.System, error) {
	return []*types.System{{ID: 1, Code: "S", Name: "N"}}, nil
}

func (f *fakeSystemService) UpdateName(_ context.Context, id uint, name string) (*types.System, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.System{ID: id, Code: "S", Name: name}, nil
}

func (f *fakeSystemService) Delete(context.Context, uint) error { return f.err }

type fakeProtocolService struct {
	got services.CreateProtocolInput
}

func (f *fakeProtocolService) Create(_ context.Context, in services.CreateProtocolInput) (*types.Protocol, error) {
	f.got = in
	p := &types.Protocol{ID: 3, SubsystemID: in.SubsystemID, AreaID: in.AreaID, DisciplineID: in.DisciplineID}
	p.SetCounters(in.Counters)
	return p, nil
}

func (f *fakeProtocolService) UpdateCounters(context.Context, uint, types.ProtocolCounters) (*types.Protocol, error) {
	return nil, apierr.NotFound("protocol_not_found", "Protocolo no encontrado")
}

func (f *fakeProtocolService) List(context.Context) ([]*types.Protocol, error) { return nil, nil }

type fakePunchListService struct {
	filter types.PunchFilter
}

func (f *fakePunchListService) List(_ context.Context, filter types.PunchFilter) ([]*types.PunchItem, error) {
	f.filter = filter
	return []*types.PunchItem{}, nil
}

func (f *fakePunchListService) Disciplines(_ context.Context, filter types.PunchFilter) ([]string, error) {
	f.filter = filter
	return []string{"Civil"}, nil
}

func (f *fakePunchListService) Totals(_ context.Context, filter types.PunchFilter) (*types.PunchTotals, error) {
	f.filter = filter
	return &types.PunchTotals{Total: 3, Open: 1, Closed: 2}, nil
}

func (f *fakePunchListService) ByCategory(context.Context, types.PunchFilter) (map[string]types.PunchTally, error) {
	return map[string]types.PunchTally{"A": {types.PunchStatusOpen: 0, types.PunchStatusClosed: 2}}, nil
}

func (f *fakePunchListService) ByDiscipline(context.Context, types.PunchFilter) (map[string]types.PunchTally, error) {
	return map[string]types.PunchTally{}, nil
}

func (f *fakePunchListService) Progress(context.Context, types.PunchFilter) (*types.PunchProgress, error) {
	return &types.PunchProgress{Total: 3, Closed: 2, Percent: 66.67}, nil
}

type fakeImportService struct {
	body []byte
	err  error
}

func (f *fakeImportService) Import(_ context.Context, r io.Reader) (*services.ImportResult, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.body = b
	if f.err != nil {
		return nil, f.err
	}
	return &services.ImportResult{Message: "ok", Inserted: 2, Skipped: 1}, nil
}

func (f *fakeImportService) Template() ([]byte, error) { return []byte("xlsx"), nil }

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func do(r http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	code, _ := errorBody(t, rec)
	return code
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Code, env.Error.Message
}

func multipartUpload(t *testing.T, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "punch.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestSystemHandlerParams(t *testing.T) {
	svc := &fakeSystemService{}
	h := NewSystemHandler(svc)
	r := newEngine()
	r.POST("/api/sistemas", h.CreateSystem)
	r.PUT("/api/sistemas/:id", h.UpdateSystem)
	r.DELETE("/api/sistemas/:id", h.DeleteSystem)

	rec := do(r, http.MethodPost, "/api/sistemas?codigo=SYS-01&nombre=Agua", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id_sistema":1,"codigo_sistema":"SYS-01","nombre_sistema":"Agua"}`, rec.Body.String())

	form := url.Values{"codigo": {"SYS-02"}, "nombre": {"Vapor"}}
	rec = do(r, http.MethodPost, "/api/sistemas", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"SYS-01", "SYS-02"}, svc.created)

	rec = do(r, http.MethodPost, "/api/sistemas?codigo=SYS-03", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorCode(t, rec))

	rec = do(r, http.MethodPut, "/api/sistemas/abc?nombre=x", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodDelete, "/api/sistemas/1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mensaje":"Sistema eliminado"}`, rec.Body.String())

	svc.err = apierr.Conflict("system_exists", "El código del sistema ya existe.")
	rec = do(r, http.MethodPost, "/api/sistemas?codigo=SYS-01&nombre=Agua", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "system_exists", errorCode(t, rec))

	svc.err = errors.New("connection reset")
	rec = do(r, http.MethodDelete, "/api/sistemas/1", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	code, msg := errorBody(t, rec)
	assert.Equal(t, "delete_system_failed", code)
	assert.Equal(t, apierr.MsgInternal, msg)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestProtocolHandlerBindsCounters(t *testing.T) {
	svc := &fakeProtocolService{}
	h := NewProtocolHandler(svc)
	r := newEngine()
	r.POST("/api/protocolos", h.CreateProtocol)
	r.PUT("/api/protocolos/:id", h.UpdateProtocol)

	q := "id_subsistema=1&id_area=2&id_disciplina=3&universo=10&aperturados=5&cerrados=4&abiertos=1&aconex=0"
	rec := do(r, http.MethodPost, "/api/protocolos?"+q, nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, uint(2), svc.got.AreaID)
	assert.Equal(t, types.ProtocolCounters{Universe: 10, Opened: 5, Closed: 4, Open: 1, Aconex: 0}, svc.got.Counters)

	rec = do(r, http.MethodPost, "/api/protocolos?id_subsistema=1&id_area=2&id_disciplina=3&universo=10", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/api/protocolos?"+strings.Replace(q, "universo=10", "universo=diez", 1), nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPut, "/api/protocolos/9?universo=1&aperturados=1&cerrados=1&abiertos=0&aconex=0", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "protocol_not_found", errorCode(t, rec))
}

func TestPunchListHandlerFilter(t *testing.T) {
	svc := &fakePunchListService{}
	h := NewPunchListHandler(svc)
	r := newEngine()
	r.GET("/api/punchlist", h.ListItems)
	r.GET("/api/punchlist/totales", h.Totals)
	r.GET("/api/punchlist/por-categoria", h.ByCategory)
	r.GET("/api/punchlist/avance", h.Progress)

	rec := do(r, http.MethodGet, "/api/punchlist?id_subsistema=7", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), svc.filter.SubsystemID)
	assert.Equal(t, "[]", rec.Body.String())

	rec = do(r, http.MethodGet, "/api/punchlist/totales", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.filter.SubsystemID)
	assert.JSONEq(t, `{"total":3,"abiertos":1,"cerrados":2}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/punchlist/totales?id_subsistema=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodGet, "/api/punchlist/por-categoria", nil, "")
	assert.JSONEq(t, `{"A":{"Abierto":0,"Cerrado":2}}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/punchlist/avance", nil, "")
	assert.JSONEq(t, `{"total":3,"cerrados":2,"porcentaje":66.67}`, rec.Body.String())
}

func TestPunchImportHandler(t *testing.T) {
	svc := &fakeImportService{}
	h := NewPunchImportHandler(svc, 1<<20)
	r := newEngine()
	r.POST("/api/punchlist/cargar", h.Upload)
	r.GET("/api/punchlist/plantilla", h.Template)

	body, contentType := multipartUpload(t, []byte("workbook-bytes"))
	rec := do(r, http.MethodPost, "/api/punchlist/cargar", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "workbook-bytes", string(svc.body))
	assert.JSONEq(t, `{"mensaje":"ok","eliminados":0,"insertados":2,"omitidos":1}`, rec.Body.String())

	rec = do(r, http.MethodPost, "/api/punchlist/cargar", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodGet, "/api/punchlist/plantilla", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), templateFilename)
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler(t *testing.T) {
	r := newEngine()
	r.GET("/healthcheck", NewHealthHandler(nil).HealthCheck)
	r.GET("/readyz", NewHealthHandler(fakePinger{err: errors.New("down")}).Ready)

	rec := do(r, http.MethodGet, "/healthcheck", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(r, http.MethodGet, "/readyz", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "database_unavailable", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "down")
}

func TestPunchImportHandlerRejectsOversizedUpload(t *testing.T) {
	svc := &fakeImportService{}
	h := NewPunchImportHandler(svc, 1024)
	r := newEngine()
	r.POST("/api/punchlist/cargar", h.Upload)

	body, contentType := multipartUpload(t, bytes.Repeat([]byte("x"), 4096))
	rec := do(r, http.MethodPost, "/api/punchlist/cargar", body, contentType)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
	assert.Equal(t, "payload_too_large", errorCode(t, rec))
	assert.Nil(t, svc.body)
}

func TestPunchImportHandlerHidesFailureCause(t *testing.T) {
	svc := &fakeImportService{
		err: apierr.InternalWithMessage("import_failed", services.MsgImportFailed, errors.New("insert punch items: too many SQL variables")),
	}
	h := NewPunchImportHandler(svc, 1<<20)
	r := newEngine()
	r.POST("/api/punchlist/cargar", h.Upload)

	body, contentType := multipartUpload(t, []byte("workbook-bytes"))
	rec := do(r, http.MethodPost, "/api/punchlist/cargar", body, contentType)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	code, msg := errorBody(t, rec)
	assert.Equal(t, "import_failed", code)
	assert.Equal(t, "Error al procesar el archivo Excel.", msg)
	assert.NotContains(t, rec.Body.String(), "SQL variables")
}
