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

const msgDisciplineExists = "La disciplina ya existe."

type DisciplineService interface {
	Create(ctx context.Context, name string) (*types.Discipline, error)
	List(ctx context.Context) ([]*types.Discipline, error)
}

type disciplineService struct {
	db          *gorm.DB
	log         *logger.Logger
	disciplines repos.DisciplineRepo
}

func NewDisciplineService(db *gorm.DB, log *logger.Logger, disciplines repos.DisciplineRepo) DisciplineService {
	return &disciplineService{
		db:          db,
		log:         log.With("service", "DisciplineService"),
		disciplines: disciplines,
	}
}

func (s *disciplineService) Create(ctx context.Context, name string) (*types.Discipline, error) {
	var created *types.Discipline
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.disciplines.GetByName(dbc, name)
		if err != nil {
			return apierr.Internal("create_discipline_failed", err)
		}
		if existing != nil {
			return apierr.Conflict("discipline_exists", msgDisciplineExists)
		}
		rows, err := s.disciplines.Create(dbc, []*types.Discipline{{Name: name}})
		if err != nil {
			return apierr.Internal("create_discipline_failed", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *disciplineService) List(ctx context.Context) ([]*types.Discipline, error) {
	rows, err := s.disciplines.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.Internal("list_disciplines_failed", err)
	}
	return rows, nil
}
