package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the `db` tags of the struct fields of T, optionally prefixed with a table alias.
func ColumnList[T any](prefix ...string) []string {
	var zero T
	typ := reflect.TypeOf(zero)

	columns := make([]string, 0, typ.NumField())
	for i := range typ.NumField() {
		column := typ.Field(i).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}
		if len(prefix) > 0 && prefix[0] != "" {
			column = fmt.Sprintf("%s.%s", prefix[0], column)
		}
		columns = append(columns, column)
	}
	return columns
}
