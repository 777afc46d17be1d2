package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shusiwoo/scourt"
)

// maxContentLen caps the stored content length in runes.
const maxContentLen = 2000

// attachmentPattern extracts the two string arguments of the portal's
// javascript download('storedName', 'filename') call.
var attachmentPattern = regexp.MustCompile(`download\('([^']+)'\s*,\s*'([^']+)'\)`)

// DetailParser extracts a full notice record from a portal detail page.
type DetailParser struct{}

// NewDetailParser creates a DetailParser.
func NewDetailParser() *DetailParser {
	return &DetailParser{}
}

// ParseDetail parses a detail document into a NoticeDetail. Missing
// sub-elements fall back to placeholders: the title falls back to "Unknown"
// and the content to the empty string. The category is derived from title
// and full content, and bid info from full content; the stored content is
// truncated after both have run.
func (p *DetailParser) ParseDetail(html, detailID string) (*scourt.NoticeDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scourt.Errorf(scourt.EINVALID, "failed to parse HTML: %v", err)
	}

	titleSel := doc.Find("h3.tit").First()
	if titleSel.Length() == 0 {
		titleSel = doc.Find("h2").First()
	}
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		title = "Unknown"
	}

	contentSel := doc.Find("div.view_cont").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("div.content").First()
	}
	content := strings.TrimSpace(contentSel.Text())

	attachments := parseAttachments(doc)

	return &scourt.NoticeDetail{
		ID:              detailID,
		Title:           title,
		Category:        scourt.Categorize(title, content),
		Content:         truncateRunes(content, maxContentLen),
		BidInfo:         scourt.ExtractBidInfo(content),
		Attachments:     attachments,
		AttachmentCount: len(attachments),
	}, nil
}

// parseAttachments scans every hyperlink in the document. A link qualifies
// only if its href contains a download( call and its visible text is
// non-empty; everything else is silently ignored.
func parseAttachments(doc *goquery.Document) []scourt.Attachment {
	var attachments []scourt.Attachment
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.Contains(href, "download(") || strings.TrimSpace(link.Text()) == "" {
			return
		}
		m := attachmentPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		attachments = append(attachments, scourt.Attachment{
			Filename:   m[2],
			StoredName: m[1],
			Kind:       scourt.AttachmentKind(m[2]),
		})
	})
	return attachments
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
