// Package slog provides logging decorators for scourt services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shusiwoo/scourt"
)

// Ensure NoticeService implements scourt.NoticeService at compile time.
var _ scourt.NoticeService = (*NoticeService)(nil)

// NoticeService wraps a scourt.NoticeService with request logging.
type NoticeService struct {
	next   scourt.NoticeService
	logger *slog.Logger
}

// NewNoticeService creates a new logging NoticeService.
func NewNoticeService(next scourt.NoticeService, logger *slog.Logger) *NoticeService {
	return &NoticeService{next: next, logger: logger}
}

// Notices delegates to the wrapped service and logs the outcome.
func (s *NoticeService) Notices(ctx context.Context, page, limit int) ([]scourt.NoticeSummary, error) {
	begin := time.Now()
	notices, err := s.next.Notices(ctx, page, limit)
	if err != nil {
		s.logger.Error("notice list failed",
			"page", page,
			"error", err,
		)
		return notices, err
	}
	s.logger.Info("notice list",
		"page", page,
		"limit", limit,
		"count", len(notices),
		"duration", time.Since(begin),
	)
	return notices, nil
}

// NoticeDetail delegates to the wrapped service and logs the outcome.
func (s *NoticeService) NoticeDetail(ctx context.Context, detailID string) (*scourt.NoticeDetail, error) {
	begin := time.Now()
	detail, err := s.next.NoticeDetail(ctx, detailID)
	if err != nil {
		s.logger.Error("notice detail failed",
			"detail_id", detailID,
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("notice detail",
		"detail_id", detailID,
		"category", detail.Category,
		"attachments", detail.AttachmentCount,
		"duration", time.Since(begin),
	)
	return detail, nil
}

// CollectNotices delegates to the wrapped service and logs the outcome.
func (s *NoticeService) CollectNotices(ctx context.Context, pages int) ([]scourt.NoticeSummary, error) {
	begin := time.Now()
	notices, err := s.next.CollectNotices(ctx, pages)
	if err != nil {
		s.logger.Error("notice collection failed",
			"pages", pages,
			"error", err,
		)
		return notices, err
	}
	s.logger.Info("notice collection",
		"pages", pages,
		"count", len(notices),
		"duration", time.Since(begin),
	)
	return notices, nil
}
