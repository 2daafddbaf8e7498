package app

import (
	"context"
	"io"
	"time"

	"github.com/yungbote/commissioning-backend/internal/observability"
	"github.com/yungbote/commissioning-backend/internal/services"
)

type instrumentedImporter struct {
	inner   services.PunchImportService
	metrics *observability.Metrics
}

func instrumentImporter(inner services.PunchImportService, metrics *observability.Metrics) services.PunchImportService {
	if inner == nil || metrics == nil {
		return inner
	}
	return &instrumentedImporter{inner: inner, metrics: metrics}
}

func (s *instrumentedImporter) Import(ctx context.Context, r io.Reader) (*services.ImportResult, error) {
	start := time.Now()
	res, err := s.inner.Import(ctx, r)
	inserted, skipped := 0, 0
	if res != nil {
		inserted, skipped = res.Inserted, res.Skipped
	}
	s.metrics.ObserveImport(inserted, skipped, time.Since(start), err)
	return res, err
}

func (s *instrumentedImporter) Template() ([]byte, error) {
	return s.inner.Template()
}
