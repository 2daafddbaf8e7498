package db

import (
	types "github.com/yungbote/commissioning-backend/internal/domain"
	"gorm.io/gorm"
)

// Models lists every table in creation order; parents come before children.
func Models() []interface{} {
	return []interface{}{
		&types.System{},
		&types.Subsystem{},
		&types.Discipline{},
		&types.Area{},
		&types.Protocol{},
		&types.PunchItem{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	s.log.Info("Auto migration complete")
	return nil
}
