package sheetdb

import (
	"strconv"
)

// Record is a keyed view of one data row. Values are opaque scalars carried
// in string form; the store never interprets them.
type Record map[string]string

// Decode converts a header-ordered row into a keyed record. Rows shorter
// than the header (trailing empty cells are trimmed on read) decode with
// empty values for the missing columns.
func Decode(headers []string, row []string) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(row) {
			rec[h] = row[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}

// Encode converts a keyed record into header-ordered cell values,
// substituting the empty string for any field the record omits.
func Encode(headers []string, rec Record) []interface{} {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = rec[h]
	}
	return row
}

// Scalar renders a decoded JSON value in the string form used for storage
// and filter comparison. Non-scalar values render as empty.
func Scalar(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

// CoerceRecord flattens a decoded JSON object into a Record, coercing every
// value to its string form.
func CoerceRecord(body map[string]interface{}) Record {
	rec := make(Record, len(body))
	for k, v := range body {
		rec[k] = Scalar(v)
	}
	return rec
}
