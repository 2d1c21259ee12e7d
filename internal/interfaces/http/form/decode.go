package form

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Values はフォーム送信値の読み取りヘルパ。
// ドット区切りのキー("socialMedia.twitter" など)をそのまま受け取る。
type Values struct {
	raw url.Values
}

func NewValues(raw url.Values) Values {
	return Values{raw: raw}
}

func (v Values) Trimmed(key string) string {
	return strings.TrimSpace(v.raw.Get(key))
}

// Checkbox はチェックボックス値を厳密等価で解釈する。
// 値がリテラル "on" のときのみ true。キー欠落・"off"・"1" はすべて false。
func (v Values) Checkbox(key string) bool {
	return v.raw.Get(key) == "on"
}

// Int は整数フィールドを寛容にパースする。空文字・非数値はフォールバック値。
func (v Values) Int(key string, fallback int) int {
	value := strings.TrimSpace(v.raw.Get(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// DecodeJSON はJSONエンコード済みフィールドを厳密にパースする。
// パース失敗は panic ではなくバリデーションエラーとして扱えるよう error で返す。
func (v Values) DecodeJSON(key string, dest any) error {
	return json.Unmarshal([]byte(v.raw.Get(key)), dest)
}
