package scourt

import "strings"

// keywordGroups is evaluated top to bottom; the first group with any keyword
// present as a substring wins. Group order is load-bearing: real-estate
// keywords are checked before movable-asset keywords so that "부동산" never
// falls through to the "동산" substring, and a text mentioning both real
// estate and bonds classifies as real estate.
var keywordGroups = []struct {
	category Category
	keywords []string
}{
	{CategoryRealEstate, []string{"부동산", "토지", "건물", "아파트", "주택", "임야", "대지", "상가", "오피스텔", "다세대"}},
	{CategoryMovable, []string{"동산", "차량", "자동차", "기계", "집기", "비품", "재고"}},
	{CategoryBond, []string{"채권", "대여금", "매출금", "출자금"}},
	{CategoryOther, []string{"무체재산권", "특허", "상표", "회원권", "주식", "지분", "영업권"}},
}

// Categorize classifies a notice from its free text. The match is a
// case-insensitive substring test over the concatenated title and content.
// Texts matching no group classify as CategoryOther.
func Categorize(title, content string) Category {
	text := strings.ToLower(title + " " + content)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.category
			}
		}
	}
	return CategoryOther
}
