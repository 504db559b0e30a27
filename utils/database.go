package utils

import (
	"reflect"
)

// ColumnList returns the `db` tags of the fields of a DB model struct, in declaration order.
// Each column can be prefixed with a table alias.
func ColumnList[DBModel any](prefix ...string) []string {
	var model DBModel
	modelType := reflect.TypeOf(model)

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		tag := modelType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		if len(prefix) > 0 && prefix[0] != "" {
			tag = prefix[0] + "." + tag
		}
		columns = append(columns, tag)
	}
	return columns
}
