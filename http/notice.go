package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shusiwoo/scourt"
	"github.com/shusiwoo/scourt/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the portal root.
const DefaultBaseURL = "https://www.scourt.go.kr"

// Portal page paths.
const (
	listPath   = "/portal/notice/realestate/RealNoticeList.work"
	detailPath = "/portal/notice/realestate/RealNoticeView.work"
)

// collectConcurrency bounds parallel listing-page fetches during collection.
const collectConcurrency = 4

// Ensure NoticeService implements scourt.NoticeService at compile time.
var _ scourt.NoticeService = (*NoticeService)(nil)

// NoticeService implements scourt.NoticeService against the live portal.
// The listing path is best-effort: fetch failures are absorbed into an empty
// result. The detail path is all-or-nothing: a failed fetch reports
// ENOTFOUND and never a partial record.
type NoticeService struct {
	fetcher scourt.Fetcher
	baseURL string
	list    *goquery.ListParser
	detail  *goquery.DetailParser
}

// ServiceOption configures a NoticeService.
type ServiceOption func(*NoticeService)

// WithBaseURL overrides the portal base URL.
func WithBaseURL(baseURL string) ServiceOption {
	return func(s *NoticeService) {
		s.baseURL = baseURL
	}
}

// NewNoticeService creates a NoticeService backed by fetcher.
func NewNoticeService(fetcher scourt.Fetcher, opts ...ServiceOption) *NoticeService {
	s := &NoticeService{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.list = goquery.NewListParser(s.baseURL)
	s.detail = goquery.NewDetailParser()
	return s
}

// Notices returns up to limit summaries from the given listing page.
func (s *NoticeService) Notices(ctx context.Context, page, limit int) ([]scourt.NoticeSummary, error) {
	html, err := s.fetcher.Fetch(ctx, fmt.Sprintf("%s%s?currentPage=%d", s.baseURL, listPath, page))
	if err != nil {
		return []scourt.NoticeSummary{}, nil
	}

	notices, err := s.list.ParseList(html, limit)
	if err != nil || notices == nil {
		return []scourt.NoticeSummary{}, nil
	}
	return notices, nil
}

// NoticeDetail returns the full notice addressed by detailID.
func (s *NoticeService) NoticeDetail(ctx context.Context, detailID string) (*scourt.NoticeDetail, error) {
	u := fmt.Sprintf("%s%s?seq_id=%s", s.baseURL, detailPath, url.QueryEscape(detailID))
	html, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, scourt.Errorf(scourt.ENOTFOUND, "notice %q not found", detailID)
	}

	detail, err := s.detail.ParseDetail(html, detailID)
	if err != nil {
		return nil, scourt.Errorf(scourt.ENOTFOUND, "notice %q not found", detailID)
	}
	return detail, nil
}

// CollectNotices fetches listing pages 1..pages concurrently and returns the
// summaries concatenated in page order.
func (s *NoticeService) CollectNotices(ctx context.Context, pages int) ([]scourt.NoticeSummary, error) {
	if pages < 1 {
		return []scourt.NoticeSummary{}, nil
	}

	results := make([][]scourt.NoticeSummary, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(collectConcurrency)
	for i := 0; i < pages; i++ {
		i := i
		g.Go(func() error {
			notices, err := s.Notices(gctx, i+1, defaultPageSize)
			if err != nil {
				return err
			}
			results[i] = notices
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := []scourt.NoticeSummary{}
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
