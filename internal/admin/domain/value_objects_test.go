package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  admin@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email.String())

	_, err = NewEmail("")
	assert.Error(t, err)

	_, err = NewEmail("not-an-email")
	assert.Error(t, err)
}

func TestNewURLAllowsEmpty(t *testing.T) {
	u, err := NewURL("")
	require.NoError(t, err)
	assert.Equal(t, "", u.String())

	u, err = NewURL("https://example.com/menu")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/menu", u.String())

	_, err = NewURL("まったくURLではない文字列")
	assert.Error(t, err)
}

func TestNewHexColor(t *testing.T) {
	for _, valid := range []string{"", "#fff", "#FFF", "#3b82f6", "#10B981"} {
		_, err := NewHexColor(valid)
		assert.NoError(t, err, valid)
	}
	for _, invalid := range []string{"fff", "#ffff", "#12345", "#gggggg"} {
		_, err := NewHexColor(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestIsValidWeekday(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, IsValidWeekday(day), day)
	}
	assert.False(t, IsValidWeekday("月曜日"))
	assert.False(t, IsValidWeekday("Monday"))
	assert.False(t, IsValidWeekday(""))
}

func TestIsValidPrefecture(t *testing.T) {
	assert.True(t, IsValidPrefecture("東京都"))
	assert.True(t, IsValidPrefecture("北海道"))
	assert.True(t, IsValidPrefecture("沖縄県"))
	assert.False(t, IsValidPrefecture("東京"))
	assert.False(t, IsValidPrefecture(""))
}

func TestNewRole(t *testing.T) {
	role, err := NewRole(" editor ")
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, role)

	_, err = NewRole("superuser")
	assert.Error(t, err)
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "hello-world", GenerateSlug("  Hello   World  "))
	assert.Equal(t, "menu-2024", GenerateSlug("Menu 2024!"))
	assert.Equal(t, "a-b", GenerateSlug("a --- b"))
}
