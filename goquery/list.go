// Package goquery provides goquery-based parsers for the notice portal's
// HTML pages: the paginated listing table and the per-notice detail page.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shusiwoo/scourt"
)

// detailIDPattern extracts the numeric notice identifier from a detail link.
var detailIDPattern = regexp.MustCompile(`seq_id=(\d+)`)

// ListParser extracts notice summaries from a portal listing page.
type ListParser struct {
	baseURL *url.URL
}

// NewListParser creates a ListParser. Detail links are resolved into
// absolute URLs against baseURL.
func NewListParser(baseURL string) *ListParser {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &ListParser{baseURL: base}
}

// ParseList parses a listing document into at most limit summaries,
// preserving row order. Parsing is best-effort: a missing table or body
// yields an empty result, and malformed rows are skipped individually. A row
// is skipped if it has fewer than 5 cells or its title cell has no link; a
// missing seq_id in the link alone never causes a skip.
func (p *ListParser) ParseList(html string, limit int) ([]scourt.NoticeSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scourt.Errorf(scourt.EINVALID, "failed to parse HTML: %v", err)
	}
	if limit < 0 {
		limit = 0
	}

	table := doc.Find("table.tableHor").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, nil
	}

	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, nil
	}

	notices := make([]scourt.NoticeSummary, 0, limit)
	tbody.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(notices) >= limit {
			return false
		}

		cells := row.Find("td")
		if cells.Length() < 5 {
			return true
		}

		titleLink := cells.Eq(3).Find("a").First()
		if titleLink.Length() == 0 {
			return true
		}
		href, _ := titleLink.Attr("href")

		n := scourt.NoticeSummary{
			Num:    strings.TrimSpace(cells.Eq(0).Text()),
			Court:  strings.TrimSpace(cells.Eq(1).Text()),
			Debtor: strings.TrimSpace(cells.Eq(2).Text()),
			Title:  strings.TrimSpace(titleLink.Text()),
			Views:  strings.TrimSpace(cells.Eq(4).Text()),
		}
		if n.Views == "" {
			n.Views = "0"
		}
		if m := detailIDPattern.FindStringSubmatch(href); m != nil {
			n.DetailID = m[1]
		}
		if href != "" {
			n.DetailURL = p.resolveURL(href)
		}
		n.Category = scourt.Categorize(n.Title, "")

		notices = append(notices, n)
		return true
	})

	return notices, nil
}

// resolveURL resolves a detail link against the portal base URL.
func (p *ListParser) resolveURL(href string) string {
	if p.baseURL == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return p.baseURL.ResolveReference(ref).String()
}
