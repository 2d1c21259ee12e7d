package domain

import "time"

// StoreInfo aggregates the single restaurant profile with its owned rows.
type StoreInfo struct {
	ID             string
	Name           string
	Description    string
	Phone          string
	Email          string
	Address        Address
	BusinessHours  []BusinessHour
	AccessInfo     string
	ReservationURL string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Address is owned 1:1 by the store and lives/dies with it.
type Address struct {
	ZipCode    string
	Prefecture string
	City       string
	Street     string
	Building   string
}

// BusinessHour is one weekday entry. The set is replaced wholesale on update,
// so entries carry no stable identity.
type BusinessHour struct {
	Day       string
	IsOpen    bool
	OpenTime  string
	CloseTime string
}

// DefaultBusinessHours は店舗未設定時に表示へ渡す営業時間。土曜のみ23時閉店。
func DefaultBusinessHours() []BusinessHour {
	hours := make([]BusinessHour, 0, len(Weekdays))
	for _, day := range Weekdays {
		closeTime := "22:00"
		if day == "土" {
			closeTime = "23:00"
		}
		hours = append(hours, BusinessHour{
			Day:       day,
			IsOpen:    true,
			OpenTime:  "11:00",
			CloseTime: closeTime,
		})
	}
	return hours
}

// DefaultStoreInfo は店舗行が未作成の場合に返す既定値一式。
func DefaultStoreInfo() StoreInfo {
	return StoreInfo{
		BusinessHours: DefaultBusinessHours(),
	}
}
