package plant

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type ProtocolRepo interface {
	Create(dbc dbctx.Context, protocols []*types.Protocol) ([]*types.Protocol, error)
	List(dbc dbctx.Context) ([]*types.Protocol, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Protocol, error)
	UpdateCounters(dbc dbctx.Context, id uint, counters types.ProtocolCounters) error
}

type protocolRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProtocolRepo(db *gorm.DB, baseLog *logger.Logger) ProtocolRepo {
	return &protocolRepo{db: db, log: baseLog.With("repo", "ProtocolRepo")}
}

func (r *protocolRepo) Create(dbc dbctx.Context, protocols []*types.Protocol) ([]*types.Protocol, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(protocols) == 0 {
		return []*types.Protocol{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&protocols).Error; err != nil {
		return nil, err
	}
	return protocols, nil
}

func (r *protocolRepo) List(dbc dbctx.Context) ([]*types.Protocol, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.Protocol{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("id_protocolo ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *protocolRepo) GetByID(dbc dbctx.Context, id uint) (*types.Protocol, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var row types.Protocol
	err := transaction.WithContext(dbc.Ctx).
		Where("id_protocolo = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateCounters writes all five counters, zeros included.
func (r *protocolRepo) UpdateCounters(dbc dbctx.Context, id uint, counters types.ProtocolCounters) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Protocol{}).
		Where("id_protocolo = ?", id).
		Updates(map[string]any{
			"universo":    counters.Universe,
			"aperturados": counters.Opened,
			"cerrados":    counters.Closed,
			"abiertos":    counters.Open,
			"aconex":      counters.Aconex,
		}).Error
}
