package domain

import "encoding/json"

// Optional is a three-valued JSON field: absent, explicit null, or a
// concrete value. It lets update payloads distinguish "leave this field
// alone" (absent) from "clear this field" (null).
//
// The zero value means absent. After unmarshaling, Set reports whether
// the field appeared in the payload at all, and Value is nil when the
// payload carried an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional carrying the given value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that is present but carries no value.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is invoked only when
// the field is present in the payload, so Set is always true here;
// absent fields keep the zero value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	o.Value = v
	return nil
}
