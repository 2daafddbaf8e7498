package plant

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type AreaRepo interface {
	Create(dbc dbctx.Context, areas []*types.Area) ([]*types.Area, error)
	List(dbc dbctx.Context) ([]*types.Area, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Area, error)
	GetByName(dbc dbctx.Context, name string) (*types.Area, error)
	Delete(dbc dbctx.Context, id uint) error
}

type areaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAreaRepo(db *gorm.DB, baseLog *logger.Logger) AreaRepo {
	return &areaRepo{db: db, log: baseLog.With("repo", "AreaRepo")}
}

func (r *areaRepo) Create(dbc dbctx.Context, areas []*types.Area) ([]*types.Area, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(areas) == 0 {
		return []*types.Area{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *areaRepo) List(dbc dbctx.Context) ([]*types.Area, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.Area{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("id_area ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *areaRepo) GetByID(dbc dbctx.Context, id uint) (*types.Area, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var row types.Area
	err := transaction.WithContext(dbc.Ctx).
		Where("id_area = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *areaRepo) GetByName(dbc dbctx.Context, name string) (*types.Area, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Area
	err := transaction.WithContext(dbc.Ctx).
		Where("nombre_area = ?", name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *areaRepo) Delete(dbc dbctx.Context, id uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id_area = ?", id).
		Delete(&types.Area{}).Error
}
