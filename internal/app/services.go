package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/observability"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type Services struct {
	System      services.SystemService
	Subsystem   services.SubsystemService
	Discipline  services.DisciplineService
	Area        services.AreaService
	Protocol    services.ProtocolService
	PunchList   services.PunchListService
	PunchImport services.PunchImportService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	importer := services.NewPunchImportService(db, log, r.PunchItem, r.Subsystem, services.PunchImportOptions{
		Atomic: cfg.ImportAtomic,
	})
	return Services{
		System:      services.NewSystemService(db, log, r.System),
		Subsystem:   services.NewSubsystemService(db, log, r.System, r.Subsystem),
		Discipline:  services.NewDisciplineService(db, log, r.Discipline),
		Area:        services.NewAreaService(db, log, r.Area),
		Protocol:    services.NewProtocolService(db, log, r.Protocol, r.Subsystem, r.Area, r.Discipline),
		PunchList:   services.NewPunchListService(db, log, r.PunchItem),
		PunchImport: instrumentImporter(importer, metrics),
	}
}
