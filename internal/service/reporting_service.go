package service

import (
	"context"
	"fmt"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReportingServiceImpl implements ports.ReportingService for the admin
// surface.
type ReportingServiceImpl struct {
	reports ports.ReportingRepository
	events  ports.WebhookEventRepository
	log     zerolog.Logger
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(reports ports.ReportingRepository, events ports.WebhookEventRepository, log zerolog.Logger) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		reports: reports,
		events:  events,
		log:     log,
	}
}

func (s *ReportingServiceImpl) SystemStats(ctx context.Context) (*ports.SystemStats, error) {
	stats, err := s.reports.GetSystemStats(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("collect system stats: %w", err))
	}
	return stats, nil
}

func (s *ReportingServiceImpl) FailedTransactions(ctx context.Context, since *int64, limit int) ([]ports.FailedTransaction, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	failed, err := s.reports.ListFailedTransactions(ctx, since, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list failed transactions: %w", err))
	}
	return failed, nil
}

func (s *ReportingServiceImpl) WebhookEvents(ctx context.Context, params ports.WebhookListParams) ([]domain.WebhookEvent, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.events.List(ctx, params)
}
