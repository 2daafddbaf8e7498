package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/data/repos"
	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/domain/punchlist"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

// PunchListService answers read-only questions about the imported punch list.
// Every method honours filter.SubsystemID.
type PunchListService interface {
	List(ctx context.Context, filter types.PunchFilter) ([]*types.PunchItem, error)
	Disciplines(ctx context.Context, filter types.PunchFilter) ([]string, error)
	Totals(ctx context.Context, filter types.PunchFilter) (*types.PunchTotals, error)
	ByCategory(ctx context.Context, filter types.PunchFilter) (map[string]types.PunchTally, error)
	ByDiscipline(ctx context.Context, filter types.PunchFilter) (map[string]types.PunchTally, error)
	Progress(ctx context.Context, filter types.PunchFilter) (*types.PunchProgress, error)
}

type punchListService struct {
	db    *gorm.DB
	log   *logger.Logger
	items repos.PunchItemRepo
}

func NewPunchListService(db *gorm.DB, log *logger.Logger, items repos.PunchItemRepo) PunchListService {
	return &punchListService{
		db:    db,
		log:   log.With("service", "PunchListService"),
		items: items,
	}
}

func (s *punchListService) List(ctx context.Context, filter types.PunchFilter) ([]*types.PunchItem, error) {
	rows, err := s.items.List(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.Internal("list_punchlist_failed", err)
	}
	return rows, nil
}

func (s *punchListService) Disciplines(ctx context.Context, filter types.PunchFilter) ([]string, error) {
	raw, err := s.items.Disciplines(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.Internal("list_punch_disciplines_failed", err)
	}
	return normalizeDisciplines(raw), nil
}

// normalizeDisciplines trims, dedupes after trimming, and sorts. Values that
// are blank once trimmed are kept as "" like any other value.
func normalizeDisciplines(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		d = strings.TrimSpace(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (s *punchListService) Totals(ctx context.Context, filter types.PunchFilter) (*types.PunchTotals, error) {
	dbc := dbctx.Context{Ctx: ctx}
	total, err := s.items.Count(dbc, filter, "")
	if err != nil {
		return nil, apierr.Internal("punch_totals_failed", err)
	}
	open, err := s.items.Count(dbc, filter, types.PunchStatusOpen)
	if err != nil {
		return nil, apierr.Internal("punch_totals_failed", err)
	}
	closed, err := s.items.Count(dbc, filter, types.PunchStatusClosed)
	if err != nil {
		return nil, apierr.Internal("punch_totals_failed", err)
	}
	return &types.PunchTotals{Total: total, Open: open, Closed: closed}, nil
}

func (s *punchListService) ByCategory(ctx context.Context, filter types.PunchFilter) (map[string]types.PunchTally, error) {
	return s.grouped(ctx, filter, repos.PunchGroupByCategory)
}

func (s *punchListService) ByDiscipline(ctx context.Context, filter types.PunchFilter) (map[string]types.PunchTally, error) {
	return s.grouped(ctx, filter, repos.PunchGroupByDiscipline)
}

func (s *punchListService) grouped(ctx context.Context, filter types.PunchFilter, column repos.PunchGroupColumn) (map[string]types.PunchTally, error) {
	counts, err := s.items.CountByStatus(dbctx.Context{Ctx: ctx}, filter, column)
	if err != nil {
		return nil, apierr.Internal("punch_"+string(column)+"_failed", fmt.Errorf("group by %s: %w", column, err))
	}
	return foldCounts(counts), nil
}

// foldCounts nests (key, status, n) buckets into key -> status -> n. NULL keys
// and statuses collapse to "".
func foldCounts(counts []repos.PunchStatusCount) map[string]types.PunchTally {
	out := make(map[string]types.PunchTally)
	for _, c := range counts {
		key := deref(c.Key)
		tally, ok := out[key]
		if !ok {
			tally = punchlist.NewTally()
			out[key] = tally
		}
		tally[deref(c.Status)] += c.Total
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *punchListService) Progress(ctx context.Context, filter types.PunchFilter) (*types.PunchProgress, error) {
	dbc := dbctx.Context{Ctx: ctx}
	total, err := s.items.Count(dbc, filter, "")
	if err != nil {
		return nil, apierr.Internal("punch_progress_failed", err)
	}
	closed, err := s.items.Count(dbc, filter, types.PunchStatusClosed)
	if err != nil {
		return nil, apierr.Internal("punch_progress_failed", err)
	}
	p := punchlist.NewProgress(total, closed)
	return &p, nil
}
