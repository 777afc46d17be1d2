package scourt

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Maximum lengths for extracted string fields. Bounds output size regardless
// of document size.
const (
	maxBidLocationLen      = 100
	maxPropertyLocationLen = 200
)

// DepositKind discriminates the Deposit variant.
type DepositKind int

// Deposit variants. At most one of amount and rate is ever populated per
// extraction; which one depends on the first deposit pattern that matched.
const (
	DepositNone DepositKind = iota
	DepositAmount
	DepositRate
)

// Deposit is the bid deposit requirement: either a fixed won amount or a
// percentage of the minimum price, never both.
type Deposit struct {
	Kind   DepositKind
	Amount int64  // won, valid when Kind == DepositAmount
	Rate   string // percentage display, valid when Kind == DepositRate
}

// MarshalJSON serializes the populated variant, or null when absent.
func (d Deposit) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DepositAmount:
		return json.Marshal(struct {
			Amount int64 `json:"amount"`
		}{d.Amount})
	case DepositRate:
		return json.Marshal(struct {
			Rate string `json:"rate"`
		}{d.Rate})
	default:
		return []byte("null"), nil
	}
}

// BidInfo holds the bid economics extracted from notice content.
// Every field is optional; the zero value means nothing matched.
type BidInfo struct {
	BidDate          string  `json:"bidDate,omitempty"`
	BidLocation      string  `json:"bidLocation,omitempty"`
	MinimumPrice     *int64  `json:"minimumPrice,omitempty"`
	Deposit          Deposit `json:"deposit"`
	PropertyLocation string  `json:"propertyLocation,omitempty"`
	Area             string  `json:"area,omitempty"`
	PaymentDeadline  string  `json:"paymentDeadline,omitempty"`
}

// Candidate patterns per field, tried top to bottom; the first match wins.
// More specific labels come first, generic forms last. Pattern text and
// ordering are contracts with the portal's markup conventions.
var (
	bidDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`입찰\s*일시\s*[:：]?\s*([^\n]{1,50})`),
		regexp.MustCompile(`매각\s*기일\s*[:：]?\s*([^\n]{1,50})`),
		regexp.MustCompile(`입찰\s*기일\s*[:：]?\s*([^\n]{1,50})`),
	}

	bidLocationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`입찰\s*장소\s*[:：]?\s*([^\n]{1,100})`),
		regexp.MustCompile(`매각\s*장소\s*[:：]?\s*([^\n]{1,100})`),
		regexp.MustCompile(`개찰\s*장소\s*[:：]?\s*([^\n]{1,100})`),
	}

	// The trailing generic pattern can latch onto any comma-grouped number
	// followed by 원. Kept last, and kept as-is for portal compatibility.
	minimumPricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`최저\s*매각\s*가격\s*[:：]?\s*금?\s*([0-9,]+)\s*원`),
		regexp.MustCompile(`최저\s*입찰\s*가격\s*[:：]?\s*금?\s*([0-9,]+)\s*원`),
		regexp.MustCompile(`매각\s*가격\s*[:：]?\s*금?\s*([0-9,]+)\s*원`),
		regexp.MustCompile(`금\s*([0-9]{1,3}(?:,[0-9]{3})+)\s*원`),
	}

	propertyLocationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`소\s*재\s*지\s*[:：]?\s*([^\n]{1,200})`),
		regexp.MustCompile(`목적물의?\s*표시\s*[:：]?\s*([^\n]{1,200})`),
	}

	areaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`면\s*적\s*[:：]?\s*([0-9,]+(?:\.[0-9]+)?)\s*(?:㎡|평|m2)`),
		regexp.MustCompile(`([0-9,]+(?:\.[0-9]+)?)\s*㎡`),
	}

	paymentDeadlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`대금\s*납부\s*기한\s*[:：]?\s*([^\n]{1,50})`),
		regexp.MustCompile(`잔금\s*납부\s*기한\s*[:：]?\s*([^\n]{1,50})`),
		regexp.MustCompile(`납부\s*기한\s*[:：]?\s*([^\n]{1,50})`),
	}
)

// depositPatterns mixes amount and percentage forms in one ordered list.
// Whichever entry matches first decides the Deposit variant.
var depositPatterns = []struct {
	re   *regexp.Regexp
	kind DepositKind
}{
	{regexp.MustCompile(`입찰\s*보증금\s*[:：]?\s*금?\s*([0-9,]+)\s*원`), DepositAmount},
	{regexp.MustCompile(`입찰\s*보증금\s*[:：]?\s*([0-9]+(?:\.[0-9]+)?)\s*%`), DepositRate},
	{regexp.MustCompile(`최저\s*매각\s*가격의\s*([0-9]+(?:\.[0-9]+)?)\s*%`), DepositRate},
	{regexp.MustCompile(`보증금\s*[:：]?\s*금?\s*([0-9,]+)\s*원`), DepositAmount},
}

// ExtractBidInfo extracts bid economics from notice content. Each field is
// matched independently; fields with no matching pattern stay at their zero
// value. The function is total and deterministic: it never fails, and the
// same content always yields the same BidInfo.
func ExtractBidInfo(content string) BidInfo {
	var info BidInfo
	if content == "" {
		return info
	}

	info.BidDate = firstMatch(bidDatePatterns, content)
	info.BidLocation = truncateRunes(firstMatch(bidLocationPatterns, content), maxBidLocationLen)
	info.PropertyLocation = truncateRunes(firstMatch(propertyLocationPatterns, content), maxPropertyLocationLen)
	info.Area = firstMatch(areaPatterns, content)
	info.PaymentDeadline = firstMatch(paymentDeadlinePatterns, content)

	if v, ok := firstWon(minimumPricePatterns, content); ok {
		info.MinimumPrice = &v
	}

	for _, p := range depositPatterns {
		m := p.re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if p.kind == DepositRate {
			info.Deposit = Deposit{Kind: DepositRate, Rate: m[1] + "%"}
		} else if v, err := parseWon(m[1]); err == nil {
			info.Deposit = Deposit{Kind: DepositAmount, Amount: v}
		}
		break
	}

	return info
}

// firstMatch returns the trimmed first capture group of the first pattern
// that matches, or "" if none do.
func firstMatch(patterns []*regexp.Regexp, content string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// firstWon parses the first matching pattern's capture as a won amount.
// A parse failure on matched digits leaves the field absent rather than
// trying further patterns.
func firstWon(patterns []*regexp.Regexp, content string) (int64, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		v, err := parseWon(m[1])
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// parseWon parses a won amount, stripping thousands separators.
func parseWon(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
}

// truncateRunes caps s at max runes.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
