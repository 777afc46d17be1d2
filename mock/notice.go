// Package mock provides mock implementations of scourt interfaces for testing.
package mock

import (
	"context"

	"github.com/shusiwoo/scourt"
)

var _ scourt.NoticeService = (*NoticeService)(nil)

// NoticeService is a mock implementation of scourt.NoticeService.
type NoticeService struct {
	NoticesFn        func(ctx context.Context, page, limit int) ([]scourt.NoticeSummary, error)
	NoticeDetailFn   func(ctx context.Context, detailID string) (*scourt.NoticeDetail, error)
	CollectNoticesFn func(ctx context.Context, pages int) ([]scourt.NoticeSummary, error)
}

func (s *NoticeService) Notices(ctx context.Context, page, limit int) ([]scourt.NoticeSummary, error) {
	return s.NoticesFn(ctx, page, limit)
}

func (s *NoticeService) NoticeDetail(ctx context.Context, detailID string) (*scourt.NoticeDetail, error) {
	return s.NoticeDetailFn(ctx, detailID)
}

func (s *NoticeService) CollectNotices(ctx context.Context, pages int) ([]scourt.NoticeSummary, error) {
	return s.CollectNoticesFn(ctx, pages)
}
