package repos

import (
	"github.com/yungbote/commissioning-backend/internal/data/repos/plant"
	"github.com/yungbote/commissioning-backend/internal/data/repos/punchlist"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type SystemRepo = plant.SystemRepo
type SubsystemRepo = plant.SubsystemRepo
type DisciplineRepo = plant.DisciplineRepo
type AreaRepo = plant.AreaRepo
type ProtocolRepo = plant.ProtocolRepo

type PunchItemRepo = punchlist.ItemRepo
type PunchStatusCount = punchlist.StatusCount
type PunchGroupColumn = punchlist.GroupColumn

const (
	PunchGroupByCategory   = punchlist.GroupByCategory
	PunchGroupByDiscipline = punchlist.GroupByDiscipline
)

func NewSystemRepo(db *gorm.DB, log *logger.Logger) SystemRepo { return plant.NewSystemRepo(db, log) }
func NewSubsystemRepo(db *gorm.DB, log *logger.Logger) SubsystemRepo {
	return plant.NewSubsystemRepo(db, log)
}
func NewDisciplineRepo(db *gorm.DB, log *logger.Logger) DisciplineRepo {
	return plant.NewDisciplineRepo(db, log)
}
func NewAreaRepo(db *gorm.DB, log *logger.Logger) AreaRepo { return plant.NewAreaRepo(db, log) }
func NewProtocolRepo(db *gorm.DB, log *logger.Logger) ProtocolRepo {
	return plant.NewProtocolRepo(db, log)
}
func NewPunchItemRepo(db *gorm.DB, log *logger.Logger) PunchItemRepo {
	return punchlist.NewItemRepo(db, log)
}
