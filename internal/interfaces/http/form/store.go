package form

import (
	"fmt"
	"net/url"
	"regexp"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

var timePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// businessHourPayload は businessHours フィールドのJSON要素。
type businessHourPayload struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// DecodeStoreInfo は店舗情報フォームを復号・検証する。
// businessHours はJSONエンコード済み文字列として受け、パース失敗は
// 当該フィールドのバリデーションエラーに落とす。
func DecodeStoreInfo(raw url.Values) (adminapp.UpdateStoreInfoCommand, FieldErrors) {
	values := NewValues(raw)
	errs := make(FieldErrors)

	cmd := adminapp.UpdateStoreInfoCommand{
		Name:        values.Trimmed("name"),
		Description: values.Trimmed("description"),
		Phone:       values.Trimmed("phone"),
		Email:       values.Trimmed("email"),
		Address: admindomain.Address{
			ZipCode:    values.Trimmed("address.zipCode"),
			Prefecture: values.Trimmed("address.prefecture"),
			City:       values.Trimmed("address.city"),
			Street:     values.Trimmed("address.street"),
			Building:   values.Trimmed("address.building"),
		},
		AccessInfo:     values.Trimmed("accessInfo"),
		ReservationURL: values.Trimmed("reservationUrl"),
	}

	requireText(errs, "name", cmd.Name, "店舗名は必須です")
	checkPhone(errs, "phone", cmd.Phone)
	checkEmail(errs, "email", cmd.Email)

	checkZipCode(errs, "address.zipCode", cmd.Address.ZipCode)
	checkPrefecture(errs, "address.prefecture", cmd.Address.Prefecture)
	requireText(errs, "address.city", cmd.Address.City, "市区町村は必須です")
	requireText(errs, "address.street", cmd.Address.Street, "番地は必須です")

	checkOptionalURL(errs, "reservationUrl", cmd.ReservationURL)

	var payload []businessHourPayload
	if err := values.DecodeJSON("businessHours", &payload); err != nil {
		errs.Add("businessHours", "営業時間の形式が正しくありません")
		return cmd, errs
	}
	cmd.BusinessHours = make([]admindomain.BusinessHour, 0, len(payload))
	for i, hour := range payload {
		checkWeekday(errs, fmt.Sprintf("businessHours.%d.day", i), hour.Day)
		if hour.IsOpen {
			checkTime(errs, fmt.Sprintf("businessHours.%d.openTime", i), hour.OpenTime)
			checkTime(errs, fmt.Sprintf("businessHours.%d.closeTime", i), hour.CloseTime)
		}
		cmd.BusinessHours = append(cmd.BusinessHours, admindomain.BusinessHour{
			Day:       hour.Day,
			IsOpen:    hour.IsOpen,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
		})
	}

	return cmd, errs
}

func checkTime(errs FieldErrors, field, value string) {
	if value == "" {
		return
	}
	if !timePattern.MatchString(value) {
		errs.Add(field, "時刻はHH:MM形式で入力してください")
	}
}
