package repository

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var timeType = reflect.TypeOf(time.Time{})

var timeLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// stringToTime lets drivers that return dates as text decode into
// time.Time fields.
func stringToTime(_ reflect.Type, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || to != timeType {
		return data, nil
	}
	var err error
	for _, layout := range timeLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return nil, err
}

// decodeRow copies the columns of row onto the `db` tagged fields of
// out. Embedded structs are flattened and numeric text (e.g. avg()
// results) is converted to the field's type.
func decodeRow(row Row, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "db",
		Result:           out,
		WeaklyTypedInput: true,
		Squash:           true,
		DecodeHook:       stringToTime,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(row))
}

func decodeRows[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var v T
		if err := decodeRow(row, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
