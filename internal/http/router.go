package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/commissioning-backend/internal/http/handlers"
	httpMW "github.com/yungbote/commissioning-backend/internal/http/middleware"
	"github.com/yungbote/commissioning-backend/internal/observability"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	CORSOrigins []string
	// ServiceName enables otelgin server spans when non-empty.
	ServiceName string

	SystemHandler      *httpH.SystemHandler
	SubsystemHandler   *httpH.SubsystemHandler
	DisciplineHandler  *httpH.DisciplineHandler
	AreaHandler        *httpH.AreaHandler
	ProtocolHandler    *httpH.ProtocolHandler
	PunchListHandler   *httpH.PunchListHandler
	PunchImportHandler *httpH.PunchImportHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	api := r.Group("/api")
	{
		// Systems
		if cfg.SystemHandler != nil {
			api.POST("/sistemas", cfg.SystemHandler.CreateSystem)
			api.GET("/sistemas", cfg.SystemHandler.ListSystems)
			api.PUT("/sistemas/:id", cfg.SystemHandler.UpdateSystem)
			api.DELETE("/sistemas/:id", cfg.SystemHandler.DeleteSystem)
		}

		// Subsystems
		if cfg.SubsystemHandler != nil {
			api.POST("/subsistemas", cfg.SubsystemHandler.CreateSubsystem)
			api.GET("/subsistemas", cfg.SubsystemHandler.ListSubsystems)
			api.DELETE("/subsistemas/:id", cfg.SubsystemHandler.DeleteSubsystem)
		}

		// Disciplines
		if cfg.DisciplineHandler != nil {
			api.POST("/disciplinas", cfg.DisciplineHandler.CreateDiscipline)
			api.GET("/disciplinas", cfg.DisciplineHandler.ListDisciplines)
		}

		// Areas
		if cfg.AreaHandler != nil {
			api.POST("/areas", cfg.AreaHandler.CreateArea)
			api.GET("/areas", cfg.AreaHandler.ListAreas)
			api.DELETE("/areas/:id", cfg.AreaHandler.DeleteArea)
		}

		// Protocols
		if cfg.ProtocolHandler != nil {
			api.POST("/protocolos", cfg.ProtocolHandler.CreateProtocol)
			api.GET("/protocolos", cfg.ProtocolHandler.ListProtocols)
			api.PUT("/protocolos/:id", cfg.ProtocolHandler.UpdateProtocol)
		}

		// Punch list
		if cfg.PunchListHandler != nil {
			api.GET("/punchlist", cfg.PunchListHandler.ListItems)
			api.GET("/punchlist/disciplinas", cfg.PunchListHandler.ListDisciplines)
			api.GET("/punchlist/totales", cfg.PunchListHandler.Totals)
			api.GET("/punchlist/por-categoria", cfg.PunchListHandler.ByCategory)
			api.GET("/punchlist/por-disciplina", cfg.PunchListHandler.ByDiscipline)
			api.GET("/punchlist/avance", cfg.PunchListHandler.Progress)
		}
		if cfg.PunchImportHandler != nil {
			api.POST("/punchlist/cargar", cfg.PunchImportHandler.Upload)
			api.GET("/punchlist/plantilla", cfg.PunchImportHandler.Template)
		}
	}

	return r
}
