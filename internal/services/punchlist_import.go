package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/data/repos"
	types "github.com/yungbote/commissioning-backend/internal/domain"
	"github.com/yungbote/commissioning-backend/internal/domain/punchlist"
	"github.com/yungbote/commissioning-backend/internal/ingestion/punchsheet"
	"github.com/yungbote/commissioning-backend/internal/pkg/dbctx"
	"github.com/yungbote/commissioning-backend/internal/platform/apierr"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

const (
	msgImportDone = "Punch List cargado correctamente"

	// MsgImportFailed is the client-facing text of every import failure.
	MsgImportFailed = "Error al procesar el archivo Excel."
)

type PunchImportOptions struct {
	// Atomic runs the delete and the inserts in one transaction. When false
	// the delete is committed first and survives a failed insert phase.
	Atomic bool
	// Now is the clock used for dias_retraso. Defaults to time.Now.
	Now func() time.Time
}

type ImportResult struct {
	Message  string `json:"mensaje"`
	Deleted  int64  `json:"eliminados"`
	Inserted int    `json:"insertados"`
	Skipped  int    `json:"omitidos"`
}

type PunchImportService interface {
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	Template() ([]byte, error)
}

type punchImportService struct {
	db         *gorm.DB
	log        *logger.Logger
	items      repos.PunchItemRepo
	subsystems repos.SubsystemRepo
	atomic     bool
	now        func() time.Time
}

func NewPunchImportService(
	db *gorm.DB,
	log *logger.Logger,
	items repos.PunchItemRepo,
	subsystems repos.SubsystemRepo,
	opts PunchImportOptions,
) PunchImportService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &punchImportService{
		db:         db,
		log:        log.With("service", "PunchImportService"),
		items:      items,
		subsystems: subsystems,
		atomic:     opts.Atomic,
		now:        now,
	}
}

// Import replaces the punch list with the rows of the first worksheet. Rows
// whose SUBSISTEMA code is unknown are skipped and counted.
func (s *punchImportService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	sheet, err := punchsheet.Parse(r)
	if err != nil {
		s.log.Error("Punch list parse failed", "error", err)
		return nil, apierr.InternalWithMessage("import_parse_failed", MsgImportFailed, err)
	}

	res := &ImportResult{Message: msgImportDone}
	if s.atomic {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			dbc := dbctx.Context{Ctx: ctx, Tx: tx}
			n, err := s.items.DeleteAll(dbc)
			if err != nil {
				return fmt.Errorf("clear punch list: %w", err)
			}
			res.Deleted = n
			return s.insertRows(dbc, sheet, res)
		})
	} else {
		res.Deleted, err = s.items.DeleteAll(dbctx.Context{Ctx: ctx})
		if err != nil {
			err = fmt.Errorf("clear punch list: %w", err)
		} else {
			err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return s.insertRows(dbctx.Context{Ctx: ctx, Tx: tx}, sheet, res)
			})
		}
	}
	if err != nil {
		s.log.Error("Punch list import failed", "sheet", sheet.Name, "atomic", s.atomic, "error", err)
		return nil, apierr.InternalWithMessage("import_failed", MsgImportFailed, err)
	}

	s.log.Info("Punch list imported",
		"sheet", sheet.Name,
		"deleted", res.Deleted,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
	)
	return res, nil
}

func (s *punchImportService) insertRows(dbc dbctx.Context, sheet *punchsheet.Sheet, res *ImportResult) error {
	today := s.now()
	known := map[string]*types.Subsystem{}
	batch := make([]*types.PunchItem, 0, len(sheet.Rows))

	for i, row := range sheet.Rows {
		code, err := row.Get(punchsheet.ColSubsystem)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		code = strings.TrimSpace(code)

		sub, seen := known[code]
		if !seen {
			sub, err = s.subsystems.GetByCode(dbc, code)
			if err != nil {
				return fmt.Errorf("lookup subsystem %q: %w", code, err)
			}
			known[code] = sub
		}
		if sub == nil {
			res.Skipped++
			continue
		}

		item, err := buildItem(row, sub.ID, today)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		batch = append(batch, item)
	}

	if _, err := s.items.Create(dbc, batch); err != nil {
		return fmt.Errorf("insert punch items: %w", err)
	}
	res.Inserted = len(batch)
	return nil
}

func buildItem(row punchsheet.Row, subsystemID uint, today time.Time) (*types.PunchItem, error) {
	discipline, err := row.Get(punchsheet.ColDiscipline)
	if err != nil {
		return nil, err
	}
	category, err := row.Get(punchsheet.ColCategory)
	if err != nil {
		return nil, err
	}
	status, err := row.Get(punchsheet.ColStatus)
	if err != nil {
		return nil, err
	}
	rawDue, err := row.Get(punchsheet.ColDueDate)
	if err != nil {
		return nil, err
	}

	item := &types.PunchItem{
		SubsystemID: subsystemID,
		Discipline:  discipline,
		Category:    punchsheet.Category(category),
		Status:      status,
	}
	if due, ok := punchsheet.ParseDate(rawDue); ok {
		d := due.Format(punchlist.DueDateLayout)
		days := punchsheet.DaysBetween(today, due)
		item.DueDate = &d
		item.DaysOverdue = &days
	}
	return item, nil
}

func (s *punchImportService) Template() ([]byte, error) {
	b, err := punchsheet.Template()
	if err != nil {
		return nil, apierr.Internal("template_failed", err)
	}
	return b, nil
}
