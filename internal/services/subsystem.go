package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/data/repos"
	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

const (
	msgSubsystemExists   = "El código del subsistema ya existe."
	msgSubsystemNotFound = "Subsistema no encontrado"
)

type SubsystemService interface {
	Create(ctx context.Context, systemID uint, code, name string) (*types.Subsystem, error)
	List(ctx context.Context) ([]*types.Subsystem, error)
	Delete(ctx context.Context, id uint) error
}

type subsystemService struct {
	db         *gorm.DB
	log        *logger.Logger
	systems    repos.SystemRepo
	subsystems repos.SubsystemRepo
}

func NewSubsystemService(db *gorm.DB, log *logger.Logger, systems repos.SystemRepo, subsystems repos.SubsystemRepo) SubsystemService {
	return &subsystemService{
		db:         db,
		log:        log.With("service", "SubsystemService"),
		systems:    systems,
		subsystems: subsystems,
	}
}

func (s *subsystemService) Create(ctx context.Context, systemID uint, code, name string) (*types.Subsystem, error) {
	var created *types.Subsystem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.subsystems.GetByCode(dbc, code)
		if err != nil {
			return apierr.Internal("create_subsystem_failed", err)
		}
		if existing != nil {
			return apierr.Conflict("subsystem_exists", msgSubsystemExists)
		}
		parent, err := s.systems.GetByID(dbc, systemID)
		if err != nil {
			return apierr.Internal("create_subsystem_failed", err)
		}
		if parent == nil {
			return apierr.BadRequest("system_not_found", msgSystemNotFound+".")
		}
		rows, err := s.subsystems.Create(dbc, []*types.Subsystem{{SystemID: systemID, Code: code, Name: name}})
		if err != nil {
			if isDuplicate(err) {
				return apierr.Conflict("subsystem_exists", msgSubsystemExists)
			}
			return apierr.Internal("create_subsystem_failed", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Subsystem created", "id_subsistema", created.ID, "codigo", created.Code)
	return created, nil
}

func (s *subsystemService) List(ctx context.Context) ([]*types.Subsystem, error) {
	rows, err := s.subsystems.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.Internal("list_subsystems_failed", err)
	}
	return rows, nil
}

func (s *subsystemService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		row, err := s.subsystems.GetByID(dbc, id)
		if err != nil {
			return apierr.Internal("delete_subsystem_failed", err)
		}
		if row == nil {
			return apierr.NotFound("subsystem_not_found", msgSubsystemNotFound)
		}
		if err := s.subsystems.Delete(dbc, id); err != nil {
			return apierr.Internal("delete_subsystem_failed", err)
		}
		return nil
	})
}
