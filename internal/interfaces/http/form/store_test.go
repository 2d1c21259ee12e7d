package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStoreForm() url.Values {
	return url.Values{
		"name":               {"カフェA"},
		"description":        {"落ち着いた雰囲気のカフェ"},
		"phone":              {"03-1234-5678"},
		"email":              {"info@cafe-a.example.com"},
		"address.zipCode":    {"150-0001"},
		"address.prefecture": {"東京都"},
		"address.city":       {"渋谷区"},
		"address.street":     {"神宮前1-2-3"},
		"address.building":   {""},
		"accessInfo":         {"渋谷駅から徒歩5分"},
		"reservationUrl":     {"https://reserve.example.com/cafe-a"},
		"businessHours":      {`[{"day":"月","isOpen":true,"openTime":"11:00","closeTime":"22:00"}]`},
	}
}

func TestDecodeStoreInfoValid(t *testing.T) {
	cmd, errs := DecodeStoreInfo(validStoreForm())
	require.False(t, errs.HasErrors(), "errors: %v", errs)

	assert.Equal(t, "カフェA", cmd.Name)
	assert.Equal(t, "03-1234-5678", cmd.Phone)
	assert.Equal(t, "東京都", cmd.Address.Prefecture)
	require.Len(t, cmd.BusinessHours, 1)
	assert.Equal(t, "月", cmd.BusinessHours[0].Day)
	assert.True(t, cmd.BusinessHours[0].IsOpen)
	assert.Equal(t, "11:00", cmd.BusinessHours[0].OpenTime)
}

// businessHours のJSONが壊れている場合は他の検証結果に加えて
// businessHours キーのエラーになる。500 にはしない。
func TestDecodeStoreInfoBrokenBusinessHours(t *testing.T) {
	raw := validStoreForm()
	raw.Set("businessHours", `[{"day":"月",`)

	_, errs := DecodeStoreInfo(raw)
	assert.Contains(t, errs["businessHours"], "営業時間の形式が正しくありません")
}

func TestDecodeStoreInfoFieldErrors(t *testing.T) {
	raw := validStoreForm()
	raw.Set("name", "")
	raw.Set("phone", "電話")
	raw.Set("address.zipCode", "12345")
	raw.Set("address.prefecture", "東京")
	raw.Set("address.city", "")

	_, errs := DecodeStoreInfo(raw)
	assert.Contains(t, errs["name"], "店舗名は必須です")
	assert.Contains(t, errs["phone"], "正しい電話番号形式で入力してください")
	assert.Contains(t, errs["address.zipCode"], "正しい郵便番号形式で入力してください")
	assert.Contains(t, errs["address.prefecture"], "有効な都道府県を選択してください")
	assert.Contains(t, errs["address.city"], "市区町村は必須です")
}

func TestDecodeStoreInfoPrefectureRequired(t *testing.T) {
	raw := validStoreForm()
	raw.Set("address.prefecture", "")

	_, errs := DecodeStoreInfo(raw)
	assert.Contains(t, errs["address.prefecture"], "都道府県は必須です")
}

func TestDecodeStoreInfoBusinessHourEntries(t *testing.T) {
	raw := validStoreForm()
	raw.Set("businessHours", `[
		{"day":"月曜日","isOpen":true,"openTime":"11:00","closeTime":"22:00"},
		{"day":"火","isOpen":true,"openTime":"25:00","closeTime":"22:00"},
		{"day":"水","isOpen":false,"openTime":"","closeTime":""}
	]`)

	cmd, errs := DecodeStoreInfo(raw)
	assert.Contains(t, errs["businessHours.0.day"], "曜日は月〜日のいずれかを指定してください")
	assert.Contains(t, errs["businessHours.1.openTime"], "時刻はHH:MM形式で入力してください")

	// 休業日の時刻は検証しない。
	assert.NotContains(t, errs, "businessHours.2.openTime")
	assert.Len(t, cmd.BusinessHours, 3)
}

func TestDecodeStoreInfoPhoneFormats(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"03-1234-5678", true},
		{"0312345678", true},
		{"090-1234-5678", true},
		{"12-34-56", false},
		{"abc-1234-5678", false},
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			raw := validStoreForm()
			raw.Set("phone", tc.phone)
			_, errs := DecodeStoreInfo(raw)
			if tc.valid {
				assert.NotContains(t, errs, "phone")
			} else {
				assert.Contains(t, errs["phone"], "正しい電話番号形式で入力してください")
			}
		})
	}
}
