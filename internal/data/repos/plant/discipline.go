package plant

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type DisciplineRepo interface {
	Create(dbc dbctx.Context, disciplines []*types.Discipline) ([]*types.Discipline, error)
	List(dbc dbctx.Context) ([]*types.Discipline, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Discipline, error)
	GetByName(dbc dbctx.Context, name string) (*types.Discipline, error)
}

type disciplineRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDisciplineRepo(db *gorm.DB, baseLog *logger.Logger) DisciplineRepo {
	return &disciplineRepo{db: db, log: baseLog.With("repo", "DisciplineRepo")}
}

func (r *disciplineRepo) Create(dbc dbctx.Context, disciplines []*types.Discipline) ([]*types.Discipline, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(disciplines) == 0 {
		return []*types.Discipline{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&disciplines).Error; err != nil {
		return nil, err
	}
	return disciplines, nil
}

func (r *disciplineRepo) List(dbc dbctx.Context) ([]*types.Discipline, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.Discipline{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("id_disciplina ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *disciplineRepo) GetByID(dbc dbctx.Context, id uint) (*types.Discipline, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var row types.Discipline
	err := transaction.WithContext(dbc.Ctx).
		Where("id_disciplina = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *disciplineRepo) GetByName(dbc dbctx.Context, name string) (*types.Discipline, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Discipline
	err := transaction.WithContext(dbc.Ctx).
		Where("nombre_disciplina = ?", name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
