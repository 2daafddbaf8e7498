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

const msgProtocolNotFound = "Protocolo no encontrado"

type CreateProtocolInput struct {
	SubsystemID  uint
	AreaID       uint
	DisciplineID uint
	Counters     types.ProtocolCounters
}

type ProtocolService interface {
	Create(ctx context.Context, in CreateProtocolInput) (*types.Protocol, error)
	UpdateCounters(ctx context.Context, id uint, counters types.ProtocolCounters) (*types.Protocol, error)
	List(ctx context.Context) ([]*types.Protocol, error)
}

type protocolService struct {
	db          *gorm.DB
	log         *logger.Logger
	protocols   repos.ProtocolRepo
	subsystems  repos.SubsystemRepo
	areas       repos.AreaRepo
	disciplines repos.DisciplineRepo
}

func NewProtocolService(
	db *gorm.DB,
	log *logger.Logger,
	protocols repos.ProtocolRepo,
	subsystems repos.SubsystemRepo,
	areas repos.AreaRepo,
	disciplines repos.DisciplineRepo,
) ProtocolService {
	return &protocolService{
		db:          db,
		log:         log.With("service", "ProtocolService"),
		protocols:   protocols,
		subsystems:  subsystems,
		areas:       areas,
		disciplines: disciplines,
	}
}

// Create checks references in a fixed order: subsystem, area, discipline.
// The first missing one is reported.
func (s *protocolService) Create(ctx context.Context, in CreateProtocolInput) (*types.Protocol, error) {
	var created *types.Protocol
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		subsystem, err := s.subsystems.GetByID(dbc, in.SubsystemID)
		if err != nil {
			return apierr.Internal("create_protocol_failed", err)
		}
		if subsystem == nil {
			return apierr.BadRequest("subsystem_not_found", msgSubsystemNotFound+".")
		}
		area, err := s.areas.GetByID(dbc, in.AreaID)
		if err != nil {
			return apierr.Internal("create_protocol_failed", err)
		}
		if area == nil {
			return apierr.BadRequest("area_not_found", msgAreaNotFound)
		}
		discipline, err := s.disciplines.GetByID(dbc, in.DisciplineID)
		if err != nil {
			return apierr.Internal("create_protocol_failed", err)
		}
		if discipline == nil {
			return apierr.BadRequest("discipline_not_found", "Disciplina no encontrada.")
		}

		p := &types.Protocol{
			SubsystemID:  in.SubsystemID,
			AreaID:       in.AreaID,
			DisciplineID: in.DisciplineID,
		}
		p.SetCounters(in.Counters)
		rows, err := s.protocols.Create(dbc, []*types.Protocol{p})
		if err != nil {
			return apierr.Internal("create_protocol_failed", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *protocolService) UpdateCounters(ctx context.Context, id uint, counters types.ProtocolCounters) (*types.Protocol, error) {
	var updated *types.Protocol
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		row, err := s.protocols.GetByID(dbc, id)
		if err != nil {
			return apierr.Internal("update_protocol_failed", err)
		}
		if row == nil {
			return apierr.NotFound("protocol_not_found", msgProtocolNotFound)
		}
		if err := s.protocols.UpdateCounters(dbc, id, counters); err != nil {
			return apierr.Internal("update_protocol_failed", err)
		}
		row.SetCounters(counters)
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *protocolService) List(ctx context.Context) ([]*types.Protocol, error) {
	rows, err := s.protocols.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.Internal("list_protocols_failed", err)
	}
	return rows, nil
}
