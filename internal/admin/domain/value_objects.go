package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	phonePattern    = regexp.MustCompile(`^\d{2,4}-?\d{2,4}-?\d{3,4}$`)
	zipCodePattern  = regexp.MustCompile(`^\d{3}-?\d{4}$`)
	hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// Weekdays は営業時間エントリが取り得る曜日ラベルの並び順。
var Weekdays = []string{"月", "火", "水", "木", "金", "土", "日"}

// Prefectures は住所入力で許可される47都道府県。
var Prefectures = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("email is required")
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}

type URL string

// NewURL は空文字を許容する。フォーム未入力の任意URL欄をそのまま受けるため。
func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

type Phone string

func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if !phonePattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid phone number: %s", trimmed)
	}
	return Phone(trimmed), nil
}

func (p Phone) String() string {
	return string(p)
}

type ZipCode string

func NewZipCode(value string) (ZipCode, error) {
	trimmed := strings.TrimSpace(value)
	if !zipCodePattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid zip code: %s", trimmed)
	}
	return ZipCode(trimmed), nil
}

func (z ZipCode) String() string {
	return string(z)
}

type HexColor string

func NewHexColor(value string) (HexColor, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !hexColorPattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid color code: %s", trimmed)
	}
	return HexColor(trimmed), nil
}

func (c HexColor) String() string {
	return string(c)
}

type Prefecture string

func NewPrefecture(value string) (Prefecture, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("prefecture is required")
	}
	for _, allowed := range Prefectures {
		if allowed == trimmed {
			return Prefecture(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid prefecture: %s", trimmed)
}

func (p Prefecture) String() string {
	return string(p)
}

type Weekday string

func NewWeekday(value string) (Weekday, error) {
	trimmed := strings.TrimSpace(value)
	for _, allowed := range Weekdays {
		if allowed == trimmed {
			return Weekday(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid weekday: %s", trimmed)
}

func (w Weekday) String() string {
	return string(w)
}

// IsValidWeekday は曜日ラベルが許可リストに含まれるか判定する。
func IsValidWeekday(value string) bool {
	_, err := NewWeekday(value)
	return err == nil
}

// IsValidPrefecture は都道府県名が許可リストに含まれるか判定する。
func IsValidPrefecture(value string) bool {
	_, err := NewPrefecture(value)
	return err == nil
}
