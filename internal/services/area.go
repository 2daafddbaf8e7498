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
	msgAreaExists   = "El área ya existe."
	msgAreaNotFound = "Área no encontrada."
)

type AreaService interface {
	Create(ctx context.Context, name string) (*types.Area, error)
	List(ctx context.Context) ([]*types.Area, error)
	Delete(ctx context.Context, id uint) error
}

type areaService struct {
	db    *gorm.DB
	log   *logger.Logger
	areas repos.AreaRepo
}

func NewAreaService(db *gorm.DB, log *logger.Logger, areas repos.AreaRepo) AreaService {
	return &areaService{
		db:    db,
		log:   log.With("service", "AreaService"),
		areas: areas,
	}
}

func (s *areaService) Create(ctx context.Context, name string) (*types.Area, error) {
	var created *types.Area
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.areas.GetByName(dbc, name)
		if err != nil {
			return apierr.Internal("create_area_failed", err)
		}
		if existing != nil {
			return apierr.Conflict("area_exists", msgAreaExists)
		}
		rows, err := s.areas.Create(dbc, []*types.Area{{Name: name}})
		if err != nil {
			if isDuplicate(err) {
				return apierr.Conflict("area_exists", msgAreaExists)
			}
			return apierr.Internal("create_area_failed", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *areaService) List(ctx context.Context) ([]*types.Area, error) {
	rows, err := s.areas.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.Internal("list_areas_failed", err)
	}
	return rows, nil
}

func (s *areaService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		row, err := s.areas.GetByID(dbc, id)
		if err != nil {
			return apierr.Internal("delete_area_failed", err)
		}
		if row == nil {
			return apierr.NotFound("area_not_found", msgAreaNotFound)
		}
		if err := s.areas.Delete(dbc, id); err != nil {
			return apierr.Internal("delete_area_failed", err)
		}
		return nil
	})
}
