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
	msgSystemExists   = "El código del sistema ya existe."
	msgSystemNotFound = "Sistema no encontrado"
)

type SystemService interface {
	Create(ctx context.Context, code, name string) (*types.System, error)
	List(ctx context.Context) ([]*types.System, error)
	UpdateName(ctx context.Context, id uint, name string) (*types.System, error)
	Delete(ctx context.Context, id uint) error
}

type systemService struct {
	db      *gorm.DB
	log     *logger.Logger
	systems repos.SystemRepo
}

func NewSystemService(db *gorm.DB, log *logger.Logger, systems repos.SystemRepo) SystemService {
	return &systemService{
		db:      db,
		log:     log.With("service", "SystemService"),
		systems: systems,
	}
}

func (s *systemService) Create(ctx context.Context, code, name string) (*types.System, error) {
	var created *types.System
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.systems.GetByCode(dbc, code)
		if err != nil {
			return apierr.Internal("create_system_failed", err)
		}
		if existing != nil {
			return apierr.Conflict("system_exists", msgSystemExists)
		}
		rows, err := s.systems.Create(dbc, []*types.System{{Code: code, Name: name}})
		if err != nil {
			if isDuplicate(err) {
				return apierr.Conflict("system_exists", msgSystemExists)
			}
			return apierr.Internal("create_system_failed", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("System created", "id_sistema", created.ID, "codigo", created.Code)
	return created, nil
}

func (s *systemService) List(ctx context.Context) ([]*types.System, error) {
	rows, err := s.systems.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.Internal("list_systems_failed", err)
	}
	return rows, nil
}

func (s *systemService) UpdateName(ctx context.Context, id uint, name string) (*types.System, error) {
	var updated *types.System
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		row, err := s.systems.GetByID(dbc, id)
		if err != nil {
			return apierr.Internal("update_system_failed", err)
		}
		if row == nil {
			return apierr.NotFound("system_not_found", msgSystemNotFound)
		}
		if err := s.systems.UpdateName(dbc, id, name); err != nil {
			return apierr.Internal("update_system_failed", err)
		}
		row.Name = name
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *systemService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		row, err := s.systems.GetByID(dbc, id)
		if err != nil {
			return apierr.Internal("delete_system_failed", err)
		}
		if row == nil {
			return apierr.NotFound("system_not_found", msgSystemNotFound)
		}
		// Dependent subsystems are not checked; the database decides.
		if err := s.systems.Delete(dbc, id); err != nil {
			return apierr.Internal("delete_system_failed", err)
		}
		return nil
	})
}
