package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the exported db-tagged fields of model.
// Fields tagged with the readonly option (`db:"id,readonly"`) are left to the
// database, e.g. serial keys.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := writableColumns(model, false)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel builds an UPDATE setting every writable db column of model.
// Columns tagged immutable (`db:"created_at,immutable"`) are written on insert
// only.
func UpdateModel(table string, model any, where ...Condition) (string, []any, error) {
	cols, vals, err := writableColumns(model, true)
	if err != nil {
		return "", nil, err
	}

	b := Update(table)
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b.Where(where...).ToSQL()
}

func writableColumns(model any, forUpdate bool) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		parts := strings.Split(strings.TrimSpace(field.Tag.Get("db")), ",")
		col := strings.TrimSpace(parts[0])
		if col == "" || col == "-" || hasTagOption(parts[1:], "readonly") {
			continue
		}
		if forUpdate && hasTagOption(parts[1:], "immutable") {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func hasTagOption(options []string, name string) bool {
	for _, opt := range options {
		if strings.TrimSpace(opt) == name {
			return true
		}
	}
	return false
}
