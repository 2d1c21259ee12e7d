package public

import (
	"testing"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/stretchr/testify/assert"
)

func weekHours(isOpen bool, openTime, closeTime string) []admindomain.BusinessHour {
	hours := make([]admindomain.BusinessHour, 0, len(admindomain.Weekdays))
	for _, day := range admindomain.Weekdays {
		hours = append(hours, admindomain.BusinessHour{
			Day:       day,
			IsOpen:    isOpen,
			OpenTime:  openTime,
			CloseTime: closeTime,
		})
	}
	return hours
}

func TestOpenNow(t *testing.T) {
	h := NewHandler(Config{Location: time.FixedZone("JST", 9*60*60)})

	t.Run("終日営業なら営業中", func(t *testing.T) {
		day, isOpen := h.openNow(weekHours(true, "00:00", "24:00"))
		assert.Contains(t, admindomain.Weekdays, day)
		assert.True(t, isOpen)
	})

	t.Run("全曜日定休なら営業時間外", func(t *testing.T) {
		_, isOpen := h.openNow(weekHours(false, "", ""))
		assert.False(t, isOpen)
	})

	t.Run("営業時間が未設定の曜日は営業時間外", func(t *testing.T) {
		_, isOpen := h.openNow(weekHours(true, "", ""))
		assert.False(t, isOpen)
	})

	t.Run("営業時間データが無い場合も営業時間外", func(t *testing.T) {
		_, isOpen := h.openNow(nil)
		assert.False(t, isOpen)
	})
}
