package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05"

// 统一的时间类型，序列化为 "2006-01-02 15:04:05"
type Time time.Time

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", time.Time(t).Format(timeLayout))), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return errors.New("models: invalid time format")
	}
	parsed, err := time.ParseInLocation(timeLayout, string(data[1:len(data)-1]), time.Local)
	if err != nil {
		return errors.Wrap(err, "models: parse time")
	}
	*t = Time(parsed)
	return nil
}

func (t Time) Value() (driver.Value, error) {
	return time.Time(t), nil
}

func (t *Time) Scan(v any) error {
	switch val := v.(type) {
	case time.Time:
		*t = Time(val)
	case []byte:
		parsed, err := time.ParseInLocation(timeLayout, string(val), time.Local)
		if err != nil {
			return errors.Wrap(err, "models: scan time")
		}
		*t = Time(parsed)
	case string:
		parsed, err := time.ParseInLocation(timeLayout, val, time.Local)
		if err != nil {
			return errors.Wrap(err, "models: scan time")
		}
		*t = Time(parsed)
	default:
		return errors.Errorf("models: cannot scan %T into models.Time", v)
	}
	return nil
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}
