package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout канонический формат даты
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается, когда строка не соответствует формату YYYY-MM-DD
var ErrInvalidDate = errors.New("invalid date format")

// Date календарный день без времени в каноническом виде YYYY-MM-DD.
// Используется как ключ, для сравнения и хранения: формат дополнен нулями,
// поэтому лексикографическое сравнение совпадает с хронологическим.
type Date string

// NewDate создает Date из time.Time в его собственной таймзоне
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate парсит и нормализует строку YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t), nil
}

// IsZero возвращает true, если дата не задана
func (d Date) IsZero() bool {
	return d == ""
}

// Validate проверяет формат YYYY-MM-DD
func (d Date) Validate() error {
	if _, err := ParseDate(string(d)); err != nil {
		return err
	}
	return nil
}

// Before возвращает true, если d раньше other
func (d Date) Before(other Date) bool {
	return d < other
}

// After возвращает true, если d позже other
func (d Date) After(other Date) bool {
	return d > other
}

// AddDays сдвигает дату на указанное количество дней
func (d Date) AddDays(days int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDate(t.AddDate(0, 0, days)), nil
}

// Time возвращает полночь этой даты в UTC
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return t, nil
}

func (d Date) String() string {
	return string(d)
}

// Scan реализует sql.Scanner (DATE приходит из lib/pq как time.Time)
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(firstN(v, len(DateLayout)))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
