package plant

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type SubsystemRepo interface {
	Create(dbc dbctx.Context, subsystems []*types.Subsystem) ([]*types.Subsystem, error)
	List(dbc dbctx.Context) ([]*types.Subsystem, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Subsystem, error)
	GetByCode(dbc dbctx.Context, code string) (*types.Subsystem, error)
	Delete(dbc dbctx.Context, id uint) error
}

type subsystemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubsystemRepo(db *gorm.DB, baseLog *logger.Logger) SubsystemRepo {
	return &subsystemRepo{db: db, log: baseLog.With("repo", "SubsystemRepo")}
}

func (r *subsystemRepo) Create(dbc dbctx.Context, subsystems []*types.Subsystem) ([]*types.Subsystem, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(subsystems) == 0 {
		return []*types.Subsystem{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&subsystems).Error; err != nil {
		return nil, err
	}
	return subsystems, nil
}

func (r *subsystemRepo) List(dbc dbctx.Context) ([]*types.Subsystem, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.Subsystem{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("id_subsistema ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *subsystemRepo) GetByID(dbc dbctx.Context, id uint) (*types.Subsystem, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var row types.Subsystem
	err := transaction.WithContext(dbc.Ctx).
		Where("id_subsistema = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByCode matches the code exactly; callers trim spreadsheet input first.
func (r *subsystemRepo) GetByCode(dbc dbctx.Context, code string) (*types.Subsystem, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Subsystem
	err := transaction.WithContext(dbc.Ctx).
		Where("codigo_subsistema = ?", code).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *subsystemRepo) Delete(dbc dbctx.Context, id uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id_subsistema = ?", id).
		Delete(&types.Subsystem{}).Error
}
