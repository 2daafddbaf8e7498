package plant

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type SystemRepo interface {
	Create(dbc dbctx.Context, systems []*types.System) ([]*types.System, error)
	List(dbc dbctx.Context) ([]*types.System, error)
	GetByID(dbc dbctx.Context, id uint) (*types.System, error)
	GetByCode(dbc dbctx.Context, code string) (*types.System, error)
	UpdateName(dbc dbctx.Context, id uint, name string) error
	Delete(dbc dbctx.Context, id uint) error
}

type systemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSystemRepo(db *gorm.DB, baseLog *logger.Logger) SystemRepo {
	return &systemRepo{db: db, log: baseLog.With("repo", "SystemRepo")}
}

func (r *systemRepo) Create(dbc dbctx.Context, systems []*types.System) ([]*types.System, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(systems) == 0 {
		return []*types.System{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&systems).Error; err != nil {
		return nil, err
	}
	return systems, nil
}

func (r *systemRepo) List(dbc dbctx.Context) ([]*types.System, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.System{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("id_sistema ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *systemRepo) GetByID(dbc dbctx.Context, id uint) (*types.System, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var row types.System
	err := transaction.WithContext(dbc.Ctx).
		Where("id_sistema = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *systemRepo) GetByCode(dbc dbctx.Context, code string) (*types.System, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.System
	err := transaction.WithContext(dbc.Ctx).
		Where("codigo_sistema = ?", code).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *systemRepo) UpdateName(dbc dbctx.Context, id uint, name string) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.System{}).
		Where("id_sistema = ?", id).
		Update("nombre_sistema", name).Error
}

func (r *systemRepo) Delete(dbc dbctx.Context, id uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id_sistema = ?", id).
		Delete(&types.System{}).Error
}
