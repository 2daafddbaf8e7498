package app

import (
	"database/sql"

	"github.com/yungbote/commissioning-backend/internal/http"
	httpH "github.com/yungbote/commissioning-backend/internal/http/handlers"
	"github.com/yungbote/commissioning-backend/internal/observability"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type Handlers struct {
	Health      *httpH.HealthHandler
	System      *httpH.SystemHandler
	Subsystem   *httpH.SubsystemHandler
	Discipline  *httpH.DisciplineHandler
	Area        *httpH.AreaHandler
	Protocol    *httpH.ProtocolHandler
	PunchList   *httpH.PunchListHandler
	PunchImport *httpH.PunchImportHandler
}

func wireHandlers(log *logger.Logger, cfg Config, s Services, sqlDB *sql.DB) Handlers {
	log.Info("Wiring handlers...")
	var pinger httpH.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	return Handlers{
		Health:      httpH.NewHealthHandler(pinger),
		System:      httpH.NewSystemHandler(s.System),
		Subsystem:   httpH.NewSubsystemHandler(s.Subsystem),
		Discipline:  httpH.NewDisciplineHandler(s.Discipline),
		Area:        httpH.NewAreaHandler(s.Area),
		Protocol:    httpH.NewProtocolHandler(s.Protocol),
		PunchList:   httpH.NewPunchListHandler(s.PunchList),
		PunchImport: httpH.NewPunchImportHandler(s.PunchImport, cfg.ImportMaxBytes),
	}
}

func wireServer(log *logger.Logger, cfg Config, h Handlers, metrics *observability.Metrics) *http.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:                log,
		Metrics:            metrics,
		CORSOrigins:        cfg.CORSAllowOrigins,
		ServiceName:        serviceName,
		HealthHandler:      h.Health,
		SystemHandler:      h.System,
		SubsystemHandler:   h.Subsystem,
		DisciplineHandler:  h.Discipline,
		AreaHandler:        h.Area,
		ProtocolHandler:    h.Protocol,
		PunchListHandler:   h.PunchList,
		PunchImportHandler: h.PunchImport,
	})
}
