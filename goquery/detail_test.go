package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shusiwoo/scourt"
	"github.com/shusiwoo/scourt/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailHTML = `<!DOCTYPE html>
<html>
<body>
<h3 class="tit">부동산 매각공고</h3>
<div class="view_cont">
소재지: 서울특별시 강남구 테헤란로 123
최저매각가격: 금 1,500,000,000원
입찰보증금: 금 150,000,000원
</div>
<a href="javascript:download('A.pdf','공고문.pdf')">첨부</a>
<a href="javascript:download('B.hwp','물건목록.hwp')">목록 다운로드</a>
<a href="javascript:download('C.pdf','무시됨.pdf')"></a>
<a href="/portal/notice/realestate/RealNoticeList.work">목록으로</a>
</body>
</html>`

func TestDetailParser_ParseDetail(t *testing.T) {
	t.Parallel()

	t.Run("parses a full detail page", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail(detailHTML, "12345")

		require.NoError(t, err)
		assert.Equal(t, "12345", detail.ID)
		assert.Equal(t, "부동산 매각공고", detail.Title)
		assert.Equal(t, scourt.CategoryRealEstate, detail.Category)
		assert.Contains(t, detail.Content, "최저매각가격")

		require.NotNil(t, detail.BidInfo.MinimumPrice)
		assert.Equal(t, int64(1_500_000_000), *detail.BidInfo.MinimumPrice)
		assert.Equal(t, scourt.DepositAmount, detail.BidInfo.Deposit.Kind)
		assert.Equal(t, "서울특별시 강남구 테헤란로 123", detail.BidInfo.PropertyLocation)
	})

	t.Run("extracts qualifying attachments in link order", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail(detailHTML, "12345")

		require.NoError(t, err)
		require.Len(t, detail.Attachments, 2)
		assert.Equal(t, 2, detail.AttachmentCount)

		assert.Equal(t, "공고문.pdf", detail.Attachments[0].Filename)
		assert.Equal(t, "A.pdf", detail.Attachments[0].StoredName)
		assert.Equal(t, "pdf", detail.Attachments[0].Kind)

		assert.Equal(t, "물건목록.hwp", detail.Attachments[1].Filename)
		assert.Equal(t, "B.hwp", detail.Attachments[1].StoredName)
		assert.Equal(t, "other", detail.Attachments[1].Kind)
	})

	t.Run("ignores download links with empty visible text", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail(detailHTML, "12345")

		require.NoError(t, err)
		for _, a := range detail.Attachments {
			assert.NotEqual(t, "C.pdf", a.StoredName)
		}
	})

	t.Run("falls back to h2 for the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h2>동산 매각공고</h2><div class="content">차량 매각</div></body></html>`

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail(html, "1")

		require.NoError(t, err)
		assert.Equal(t, "동산 매각공고", detail.Title)
		assert.Equal(t, scourt.CategoryMovable, detail.Category)
	})

	t.Run("falls back to Unknown when no heading exists", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail("<html><body><p>본문만 있음</p></body></html>", "1")

		require.NoError(t, err)
		assert.Equal(t, "Unknown", detail.Title)
		assert.Empty(t, detail.Content)
		assert.Equal(t, scourt.CategoryOther, detail.Category)
		assert.Empty(t, detail.Attachments)
		assert.Zero(t, detail.AttachmentCount)
	})

	t.Run("uses div.content when view_cont is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h3 class="tit">공고</h3><div class="content">백업 본문</div></body></html>`

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail(html, "1")

		require.NoError(t, err)
		assert.Equal(t, "백업 본문", detail.Content)
	})

	t.Run("truncates content to 2000 runes", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<html><body><h3 class="tit">공고</h3><div class="view_cont">%s</div></body></html>`,
			strings.Repeat("가", 2500))

		p := goquery.NewDetailParser()
		detail, err := p.ParseDetail(html, "1")

		require.NoError(t, err)
		assert.Len(t, []rune(detail.Content), 2000)
	})
}
