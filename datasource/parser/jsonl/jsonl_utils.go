package jsonl

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// ParseJSONRow extracts the value at each gjson path in names. Missing keys and
// JSON nulls produce nil. Integral numbers which fit an int64 are produced as
// int64, other numbers as float64; the ColumnType of each column coerces them later.
func ParseJSONRow(names []string, jsonData gjson.Result) map[string]interface{} {
	values := make(map[string]interface{}, len(names))
	for _, name := range names {
		val := jsonData.Get(name)
		switch {
		case !val.Exists() || val.Type == gjson.Null:
			values[name] = nil
		case val.Type == gjson.Number:
			if i, err := strconv.ParseInt(val.Raw, 10, 64); err == nil {
				values[name] = i
			} else {
				values[name] = val.Num
			}
		default:
			values[name] = val.Value()
		}
	}
	return values
}
