package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// EndOfDay последняя минута суток, в нее отображается TIME '24:00:00'
var EndOfDay = TimeOfDay{minutes: minutesPerDay - 1}

var (
	// ErrInvalidTimeOfDay возвращается при некорректном формате времени
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day")
)

// TimeOfDay время суток с точностью до минуты (минуты от полуночи)
// Используется для полей open_time / close_time / last_booking_time окон обслуживания
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// MustTimeOfDay как ParseTimeOfDay, но паникует при ошибке (для констант и тестов)
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay парсит время в формате "HH:MM" или "HH:MM:SS" (секунды отбрасываются)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)

	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}

	parsed, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDay{minutes: parsed.Hour()*60 + parsed.Minute()}, nil
}

// FromTime извлекает время суток из time.Time
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) IsBefore(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) IsAfter(other TimeOfDay) bool  { return t.minutes > other.minutes }

// AddMinutes сдвигает время в пределах суток
// Переход через полночь не поддерживается и возвращает ошибку
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	total := t.minutes + m
	if total < 0 || total >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s%+d min crosses midnight", ErrInvalidTimeOfDay, t, m)
	}
	return TimeOfDay{minutes: total}, nil
}

// On возвращает момент времени в указанную дату (в часовом поясе даты)
func (t TimeOfDay) On(date time.Time) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String возвращает время в формате HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Scan реализует sql.Scanner
// lib/pq отдает колонки типа TIME как time.Time (0000-01-01), но драйвер может вернуть и строку.
// Postgres допускает TIME '24:00:00': lib/pq отдает его как 00:00 следующего дня,
// такое значение читается как EndOfDay, а не как полночь
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		if v.Year() == 0 && v.YearDay() > 1 {
			*t = EndOfDay
			return nil
		}
		*t = FromTime(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeOfDay)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeOfDay, src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	if s = strings.TrimSpace(s); strings.HasPrefix(s, "24:00") {
		*t = EndOfDay
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

// MarshalText нужен для json/toml
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
