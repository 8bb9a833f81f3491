package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ── PostgreSQL UUID[] custom type ──

// UUIDArray maps a PostgreSQL UUID[] column, implementing the GORM
// Scanner/Valuer interfaces. Element order is preserved; for routes the
// order defines patrol traversal order.
type UUIDArray []string

// Scan parses the PostgreSQL {a,b,c} text form into a string slice.
func (a *UUIDArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("UUIDArray.Scan: unsupported type %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*a = UUIDArray{}
		return nil
	}
	parts := strings.Split(s, ",")
	arr := make(UUIDArray, 0, len(parts))
	for _, p := range parts {
		arr = append(arr, strings.Trim(strings.TrimSpace(p), `"`))
	}
	*a = arr
	return nil
}

// Value serializes the slice into the PostgreSQL {a,b,c} text form.
func (a UUIDArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return "{" + strings.Join(a, ",") + "}", nil
}

// GormDataType tells GORM the column type for migrations-free contexts.
func (UUIDArray) GormDataType() string { return "uuid[]" }
