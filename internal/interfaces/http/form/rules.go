package form

import (
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"unicode/utf8"
)

// 検証ルール群。違反は errs に積み、最初の失敗で打ち切らない。

func requireText(errs FieldErrors, field, value, message string) {
	if value == "" {
		errs.Add(field, message)
	}
}

func checkEmail(errs FieldErrors, field, value string) {
	if _, err := admindomain.NewEmail(value); err != nil {
		errs.Add(field, "有効なメールアドレスを入力してください")
	}
}

// checkOptionalURL は空文字を許す。値があるときのみURL形式を検証する。
func checkOptionalURL(errs FieldErrors, field, value string) {
	if value == "" {
		return
	}
	if _, err := admindomain.NewURL(value); err != nil {
		errs.Add(field, "有効なURLを入力してください")
	}
}

func checkPhone(errs FieldErrors, field, value string) {
	if _, err := admindomain.NewPhone(value); err != nil {
		errs.Add(field, "正しい電話番号形式で入力してください")
	}
}

func checkZipCode(errs FieldErrors, field, value string) {
	if _, err := admindomain.NewZipCode(value); err != nil {
		errs.Add(field, "正しい郵便番号形式で入力してください")
	}
}

// checkOptionalHexColor は #RGB / #RRGGBB のみ許す。空文字は許す。
func checkOptionalHexColor(errs FieldErrors, field, value string) {
	if value == "" {
		return
	}
	if _, err := admindomain.NewHexColor(value); err != nil {
		errs.Add(field, "有効なカラーコードを入力してください")
	}
}

func checkMaxRunes(errs FieldErrors, field, value string, max int, message string) {
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, message)
	}
}

func checkPositive(errs FieldErrors, field string, value int, message string) {
	if value <= 0 {
		errs.Add(field, message)
	}
}

func checkPrefecture(errs FieldErrors, field, value string) {
	if value == "" {
		errs.Add(field, "都道府県は必須です")
		return
	}
	if !admindomain.IsValidPrefecture(value) {
		errs.Add(field, "有効な都道府県を選択してください")
	}
}

func checkWeekday(errs FieldErrors, field, value string) {
	if !admindomain.IsValidWeekday(value) {
		errs.Add(field, "曜日は月〜日のいずれかを指定してください")
	}
}
