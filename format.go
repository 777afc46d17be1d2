package scourt

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	wonPerEok = 100_000_000
	wonPerMan = 10_000
)

// FormatPrice renders a won amount in the conventional 억/만원 display form.
// A nil amount renders as "". Above the 억 threshold the sub-만원 remainder
// is not rendered; the transform is lossy for display purposes.
func FormatPrice(won *int64) string {
	if won == nil {
		return ""
	}
	v := *won
	switch {
	case v >= wonPerEok:
		eok := v / wonPerEok
		man := v % wonPerEok / wonPerMan
		if man > 0 {
			return fmt.Sprintf("%d억 %s만원", eok, humanize.Comma(man))
		}
		return fmt.Sprintf("%d억원", eok)
	case v >= wonPerMan:
		return humanize.Comma(v/wonPerMan) + "만원"
	default:
		return humanize.Comma(v) + "원"
	}
}
