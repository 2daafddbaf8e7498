package punchlist

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

// GroupColumn names a column punch items can be grouped by.
type GroupColumn string

const (
	GroupByCategory   GroupColumn = "categoria"
	GroupByDiscipline GroupColumn = "disciplina"
)

// CreateBatchSize keeps each multi-row INSERT well under the bind-parameter
// limits of SQLite (32766) and Postgres (65535).
const CreateBatchSize = 500

// StatusCount is one (key, status) bucket of a grouped count.
type StatusCount struct {
	Key    *string `gorm:"column:group_key"`
	Status *string `gorm:"column:status"`
	Total  int64   `gorm:"column:total"`
}

type ItemRepo interface {
	Create(dbc dbctx.Context, items []*types.PunchItem) ([]*types.PunchItem, error)
	DeleteAll(dbc dbctx.Context) (int64, error)
	List(dbc dbctx.Context, filter types.PunchFilter) ([]*types.PunchItem, error)
	Disciplines(dbc dbctx.Context, filter types.PunchFilter) ([]string, error)
	Count(dbc dbctx.Context, filter types.PunchFilter, status string) (int64, error)
	CountByStatus(dbc dbctx.Context, filter types.PunchFilter, column GroupColumn) ([]StatusCount, error)
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	return &itemRepo{db: db, log: baseLog.With("repo", "PunchItemRepo")}
}

func scoped(q *gorm.DB, filter types.PunchFilter) *gorm.DB {
	if filter.SubsystemID != 0 {
		q = q.Where("id_subsistema = ?", filter.SubsystemID)
	}
	return q
}

func (r *itemRepo) Create(dbc dbctx.Context, items []*types.PunchItem) ([]*types.PunchItem, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(items) == 0 {
		return []*types.PunchItem{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).CreateInBatches(&items, CreateBatchSize).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteAll empties the table and reports how many rows went away.
func (r *itemRepo) DeleteAll(dbc dbctx.Context) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Where("1 = 1").
		Delete(&types.PunchItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *itemRepo) List(dbc dbctx.Context, filter types.PunchFilter) ([]*types.PunchItem, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.PunchItem{}
	q := scoped(transaction.WithContext(dbc.Ctx).Model(&types.PunchItem{}), filter)
	if err := q.Order("id_punchlist ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Disciplines returns the raw distinct non-null values; trimming happens in the service.
func (r *itemRepo) Disciplines(dbc dbctx.Context, filter types.PunchFilter) ([]string, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []string{}
	q := scoped(transaction.WithContext(dbc.Ctx).Model(&types.PunchItem{}), filter)
	if err := q.Where("disciplina IS NOT NULL").
		Distinct().
		Order("disciplina ASC").
		Pluck("disciplina", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Count counts matching items; an empty status counts every status.
func (r *itemRepo) Count(dbc dbctx.Context, filter types.PunchFilter, status string) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	q := scoped(transaction.WithContext(dbc.Ctx).Model(&types.PunchItem{}), filter)
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *itemRepo) CountByStatus(dbc dbctx.Context, filter types.PunchFilter, column GroupColumn) ([]StatusCount, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	switch column {
	case GroupByCategory, GroupByDiscipline:
	default:
		return nil, fmt.Errorf("unsupported group column %q", column)
	}
	col := string(column)
	out := []StatusCount{}
	q := scoped(transaction.WithContext(dbc.Ctx).Model(&types.PunchItem{}), filter)
	if err := q.
		Select(col + " AS group_key, estado AS status, COUNT(id_punchlist) AS total").
		Group(col + ", estado").
		Order(col + " ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
