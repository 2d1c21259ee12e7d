package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role は管理画面のアクセス権限。
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleEditor      Role = "EDITOR"
	RoleAuthor      Role = "AUTHOR"
	RoleContributor Role = "CONTRIBUTOR"
)

func NewRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEditor:
		return RoleEditor, nil
	case RoleAuthor:
		return RoleAuthor, nil
	case RoleContributor:
		return RoleContributor, nil
	}
	return "", fmt.Errorf("invalid role: %s", value)
}

func (r Role) String() string {
	return string(r)
}

// CanManageContent は編集者以上の権限か判定する。
func (r Role) CanManageContent() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User represents an admin back-office account.
// パスワードハッシュはリポジトリ境界の外に出さないためここには持たない。
type User struct {
	ID             string
	Email          string
	FirstName      string
	LastName       string
	ProfilePicture string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName はスキーマ上の firstName/lastName を表示用の単一名へ揃える境界アダプタ。
// 名前が未設定のアカウントはメールアドレスのローカル部で代用する。
func (u User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.LastName) + " " + strings.TrimSpace(u.FirstName))
	if name != "" {
		return name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}
