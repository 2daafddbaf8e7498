package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/data/repos"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type Repos struct {
	System     repos.SystemRepo
	Subsystem  repos.SubsystemRepo
	Discipline repos.DisciplineRepo
	Area       repos.AreaRepo
	Protocol   repos.ProtocolRepo
	PunchItem  repos.PunchItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		System:     repos.NewSystemRepo(db, log),
		Subsystem:  repos.NewSubsystemRepo(db, log),
		Discipline: repos.NewDisciplineRepo(db, log),
		Area:       repos.NewAreaRepo(db, log),
		Protocol:   repos.NewProtocolRepo(db, log),
		PunchItem:  repos.NewPunchItemRepo(db, log),
	}
}
