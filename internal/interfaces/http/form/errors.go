package form

import "sort"

// FieldErrors はフィールドパスをキーにしたバリデーションメッセージの集合。
// 1フィールドに複数の違反が付くことがあるためスライスで持つ。
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge は別の FieldErrors を取り込む。
func (e FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// Fields はエラーのあるフィールドパスをソート済みで返す。
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
