package toml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatInteger renders i in TOML/JSON-compatible decimal form.
func formatInteger(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatFloat renders f the way TOML and the conformance suite expect:
// inf/-inf/nan spelled out, and a decimal point forced onto otherwise
// integral values so "1.0" never round-trips as the bare integer "1".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatDate renders YYYY-MM-DD, zero-padded.
func formatDate(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// formatTime renders HH:MM:SS with a ".nnnnnnnnn" suffix only when
// Nanosecond is non-zero, trimmed of trailing zeros.
func formatTime(t Time) string {
	base := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond == 0 {
		return base
	}
	frac := fmt.Sprintf("%09d", t.Nanosecond)
	frac = strings.TrimRight(frac, "0")
	return base + "." + frac
}

// formatOffset renders an offset in minutes as "Z" for zero, else
// "+HH:MM"/"-HH:MM".
func formatOffset(minutes int) string {
	if minutes == 0 {
		return "Z"
	}
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// formatDateTime renders a DateTime as RFC 3339-shaped text, including
// the offset only when HasOffset is set.
func formatDateTime(dt DateTime) string {
	s := formatDate(dt.Date) + "T" + formatTime(dt.Time)
	if dt.HasOffset {
		s += formatOffset(dt.OffsetMinutes)
	}
	return s
}

// jsonTypeTag maps a scalar Value's kind to the toml-lang conformance
// suite's typed-JSON type tag, distinguishing an offset-bearing
// datetime from a local one.
func jsonTypeTag(v *Value) string {
	switch v.Kind() {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date-local"
	case KindTime:
		return "time-local"
	case KindDateTime:
		dt, _ := v.DateTimeVal()
		if dt.HasOffset {
			return "datetime"
		}
		return "datetime-local"
	default:
		return "unknown"
	}
}

// jsonValueText renders a scalar Value's text form for both the typed
// JSON "value" field and the plain-JSON representation of non-numeric,
// non-bool scalars (strings, dates, times, datetimes).
func jsonValueText(v *Value) string {
	switch v.Kind() {
	case KindString:
		s, _ := v.String()
		return s
	case KindInteger:
		i, _ := v.Integer()
		return formatInteger(i)
	case KindFloat:
		f, _ := v.Float()
		return formatFloat(f)
	case KindBool:
		b, _ := v.Bool()
		return formatBool(b)
	case KindDate:
		d, _ := v.DateVal()
		return formatDate(d)
	case KindTime:
		t, _ := v.TimeVal()
		return formatTime(t)
	case KindDateTime:
		dt, _ := v.DateTimeVal()
		return formatDateTime(dt)
	default:
		return ""
	}
}
