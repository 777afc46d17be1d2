package scourt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shusiwoo/scourt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const saleContent = `부동산 매각공고

소재지: 서울특별시 강남구 테헤란로 123
대지면적: 452.5㎡
최저매각가격: 금 1,500,000,000원
입찰보증금: 금 150,000,000원
입찰일시: 2024. 3. 15. 10:00
입찰장소: 서울회생법원 제1호 법정
대금납부기한: 2024. 4. 30.`

func TestExtractBidInfo(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields from a full announcement", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo(saleContent)

		assert.Equal(t, "2024. 3. 15. 10:00", info.BidDate)
		assert.Equal(t, "서울회생법원 제1호 법정", info.BidLocation)
		require.NotNil(t, info.MinimumPrice)
		assert.Equal(t, int64(1_500_000_000), *info.MinimumPrice)
		assert.Equal(t, scourt.DepositAmount, info.Deposit.Kind)
		assert.Equal(t, int64(150_000_000), info.Deposit.Amount)
		assert.Equal(t, "서울특별시 강남구 테헤란로 123", info.PropertyLocation)
		assert.Equal(t, "452.5", info.Area)
		assert.Equal(t, "2024. 4. 30.", info.PaymentDeadline)
	})

	t.Run("returns zero value for empty content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, scourt.BidInfo{}, scourt.ExtractBidInfo(""))
	})

	t.Run("returns zero value when nothing matches", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, scourt.BidInfo{}, scourt.ExtractBidInfo("의견 청취 안내문입니다."))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		first := scourt.ExtractBidInfo(saleContent)
		second := scourt.ExtractBidInfo(saleContent)

		assert.Equal(t, first, second)
	})

	t.Run("extracts deposit rate when only a percentage is stated", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo("입찰보증금은 최저매각가격의 10%에 해당하는 금액")

		assert.Equal(t, scourt.DepositRate, info.Deposit.Kind)
		assert.Equal(t, "10%", info.Deposit.Rate)
		assert.Zero(t, info.Deposit.Amount)
		assert.Nil(t, info.MinimumPrice)
	})

	t.Run("deposit amount wins when amount and rate both appear", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo("입찰보증금: 금 5,000,000원 (최저매각가격의 10%)")

		assert.Equal(t, scourt.DepositAmount, info.Deposit.Kind)
		assert.Equal(t, int64(5_000_000), info.Deposit.Amount)
		assert.Empty(t, info.Deposit.Rate)
	})

	t.Run("falls back to the generic price pattern", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo("잔여 재산 금 12,345,000원을 분배한다")

		require.NotNil(t, info.MinimumPrice)
		assert.Equal(t, int64(12_345_000), *info.MinimumPrice)
	})

	t.Run("swallows numeric overflow and leaves the price absent", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo("최저매각가격: 금 99,999,999,999,999,999,999원")

		assert.Nil(t, info.MinimumPrice)
	})

	t.Run("truncates bid location to 100 runes", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo("입찰장소: " + strings.Repeat("가", 150))

		assert.Len(t, []rune(info.BidLocation), 100)
	})

	t.Run("truncates property location to 200 runes", func(t *testing.T) {
		t.Parallel()

		info := scourt.ExtractBidInfo("소재지: " + strings.Repeat("나", 250))

		assert.Len(t, []rune(info.PropertyLocation), 200)
	})
}

func TestDeposit_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes an amount deposit", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(scourt.Deposit{Kind: scourt.DepositAmount, Amount: 5_000_000})

		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":5000000}`, string(b))
	})

	t.Run("serializes a rate deposit", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(scourt.Deposit{Kind: scourt.DepositRate, Rate: "10%"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"rate":"10%"}`, string(b))
	})

	t.Run("serializes an absent deposit as null", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(scourt.Deposit{})

		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	})
}
