package testutil

import (
	"context"
	"testing"

	types "github.com/yungbote/commissioning-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedSystem(tb testing.TB, ctx context.Context, tx *gorm.DB, code string) *types.System {
	tb.Helper()
	s := &types.System{Code: code, Name: "Sistema " + code}
	mustf(tb, tx.WithContext(ctx).Create(s).Error, "seed system %s", code)
	return s
}

func SeedSubsystem(tb testing.TB, ctx context.Context, tx *gorm.DB, systemID uint, code string) *types.Subsystem {
	tb.Helper()
	s := &types.Subsystem{SystemID: systemID, Code: code, Name: "Subsistema " + code}
	mustf(tb, tx.WithContext(ctx).Create(s).Error, "seed subsystem %s", code)
	return s
}

func SeedDiscipline(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Discipline {
	tb.Helper()
	d := &types.Discipline{Name: name}
	mustf(tb, tx.WithContext(ctx).Create(d).Error, "seed discipline %s", name)
	return d
}

func SeedArea(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Area {
	tb.Helper()
	a := &types.Area{Name: name}
	mustf(tb, tx.WithContext(ctx).Create(a).Error, "seed area %s", name)
	return a
}

func SeedPunchItem(tb testing.TB, ctx context.Context, tx *gorm.DB, subsystemID uint, discipline, category, status string) *types.PunchItem {
	tb.Helper()
	it := &types.PunchItem{
		SubsystemID: subsystemID,
		Discipline:  discipline,
		Category:    category,
		Status:      status,
	}
	mustf(tb, tx.WithContext(ctx).Create(it).Error, "seed punch item")
	return it
}
