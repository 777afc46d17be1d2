package scourt

import (
	"context"
	"strings"
)

// Category is the coarse asset-type classification of a notice.
type Category string

// Category constants. Values are the portal's display labels.
const (
	CategoryRealEstate Category = "부동산"
	CategoryMovable    Category = "동산"
	CategoryBond       Category = "채권"
	CategoryOther      Category = "기타"
)

// NoticeSummary is one row of the portal's listing table.
type NoticeSummary struct {
	Num       string   `json:"num"`
	Court     string   `json:"court"`
	Debtor    string   `json:"debtor"`
	Title     string   `json:"title"`
	DetailID  string   `json:"detailId,omitempty"`
	Views     string   `json:"views"`
	Category  Category `json:"category"`
	DetailURL string   `json:"detailUrl,omitempty"`
}

// Attachment is a downloadable file referenced from a notice detail page.
type Attachment struct {
	// Filename is the original display name.
	Filename string `json:"filename"`

	// StoredName is the server-side storage key.
	StoredName string `json:"storedName"`

	// Kind is "pdf" or "other", derived from Filename.
	Kind string `json:"kind"`
}

// AttachmentKind derives the attachment kind from a filename.
// Returns "pdf" if the filename ends in ".pdf" case-insensitively,
// "other" otherwise.
func AttachmentKind(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return "pdf"
	}
	return "other"
}

// NoticeDetail is the full record behind one listing row.
type NoticeDetail struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Category        Category     `json:"category"`
	Content         string       `json:"content"`
	BidInfo         BidInfo      `json:"bidInfo"`
	Attachments     []Attachment `json:"attachments"`
	AttachmentCount int          `json:"attachmentCount"`
}

// NoticeService provides access to portal notices.
type NoticeService interface {
	// Notices returns up to limit summaries from the given listing page,
	// preserving row order. A page-level fetch failure yields an empty
	// slice, never an error.
	Notices(ctx context.Context, page, limit int) ([]NoticeSummary, error)

	// NoticeDetail returns the full notice addressed by detailID.
	// Returns ENOTFOUND if the portal page cannot be fetched; no partial
	// record is ever returned for a failed fetch.
	NoticeDetail(ctx context.Context, detailID string) (*NoticeDetail, error)

	// CollectNotices fetches listing pages 1..pages and returns the
	// summaries concatenated in page order.
	CollectNotices(ctx context.Context, pages int) ([]NoticeSummary, error)
}

// Fetcher retrieves decoded HTML documents from portal URLs.
type Fetcher interface {
	// Fetch returns the UTF-8 decoded HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// CountByCourt tallies notices per court name.
func CountByCourt(notices []NoticeSummary) map[string]int {
	stats := make(map[string]int, len(notices))
	for _, n := range notices {
		stats[n.Court]++
	}
	return stats
}

// FilterNotices returns the notices whose title, court, or debtor contains
// keyword, case-insensitively. Input order is preserved.
func FilterNotices(notices []NoticeSummary, keyword string) []NoticeSummary {
	kw := strings.ToLower(keyword)
	var matched []NoticeSummary
	for _, n := range notices {
		if strings.Contains(strings.ToLower(n.Title), kw) ||
			strings.Contains(strings.ToLower(n.Court), kw) ||
			strings.Contains(strings.ToLower(n.Debtor), kw) {
			matched = append(matched, n)
		}
	}
	return matched
}
