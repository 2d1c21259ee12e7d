package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesCheckbox(t *testing.T) {
	cases := []struct {
		name  string
		value []string
		want  bool
	}{
		{"on は真", []string{"on"}, true},
		{"off は偽", []string{"off"}, false},
		{"true でも偽", []string{"true"}, false},
		{"1 でも偽", []string{"1"}, false},
		{"空文字は偽", []string{""}, false},
		{"未送信は偽", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := url.Values{}
			if tc.value != nil {
				raw["flag"] = tc.value
			}
			values := NewValues(raw)
			assert.Equal(t, tc.want, values.Checkbox("flag"))
		})
	}
}

func TestValuesInt(t *testing.T) {
	values := NewValues(url.Values{
		"valid":   {"15"},
		"invalid": {"abc"},
		"empty":   {""},
		"spaced":  {" 7 "},
	})

	assert.Equal(t, 15, values.Int("valid", 10))
	assert.Equal(t, 10, values.Int("invalid", 10))
	assert.Equal(t, 10, values.Int("empty", 10))
	assert.Equal(t, 7, values.Int("spaced", 10))
	assert.Equal(t, 10, values.Int("missing", 10))
}

func TestValuesTrimmed(t *testing.T) {
	values := NewValues(url.Values{"name": {"  カフェA  "}})
	assert.Equal(t, "カフェA", values.Trimmed("name"))
}

func TestValuesDecodeJSON(t *testing.T) {
	values := NewValues(url.Values{
		"hours":  {`[{"day":"月","isOpen":true,"openTime":"11:00","closeTime":"22:00"}]`},
		"broken": {`[{"day":`},
	})

	var hours []struct {
		Day       string `json:"day"`
		IsOpen    bool   `json:"isOpen"`
		OpenTime  string `json:"openTime"`
		CloseTime string `json:"closeTime"`
	}
	require.NoError(t, values.DecodeJSON("hours", &hours))
	require.Len(t, hours, 1)
	assert.Equal(t, "月", hours[0].Day)
	assert.True(t, hours[0].IsOpen)

	var broken []map[string]any
	assert.Error(t, values.DecodeJSON("broken", &broken))
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	assert.False(t, errs.HasErrors())

	errs.Add("siteName", "サイト名は必須です")
	errs.Add("siteName", "サイト名が長すぎます")
	errs.Add("adminEmail", "有効なメールアドレスを入力してください")

	assert.True(t, errs.HasErrors())
	assert.Len(t, errs["siteName"], 2)
	assert.Equal(t, []string{"adminEmail", "siteName"}, errs.Fields())
}
