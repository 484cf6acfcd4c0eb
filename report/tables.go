package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnmappedIcon is returned when an icon code has no glyph
var ErrUnmappedIcon = errors.New("unmapped icon code")

// icons maps OpenWeatherMap condition codes (without the d/n suffix) to glyphs
var icons = map[string]string{
	"01": "☀️",
	"02": "🌤",
	"03": "🌥",
	"04": "☁️",
	"09": "🌧",
	"10": "🌦",
	"11": "⛈",
	"13": "🌨",
	"50": "🌫",
}

// weekdays is indexed Monday-first
var weekdays = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// IconCode strips the trailing day/night character from an icon id ("10n" -> "10")
func IconCode(icon string) string {
	if icon == "" {
		return ""
	}
	return icon[:len(icon)-1]
}

// Glyph returns the display glyph for an icon code such as "01"
func Glyph(code string) (string, error) {
	glyph, ok := icons[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnmappedIcon, code)
	}
	return glyph, nil
}

// WeekdayIndex converts a time's weekday to the Monday=0 convention
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Weekday returns the display name of the day t falls on
func Weekday(t time.Time) string {
	return weekdays[WeekdayIndex(t)]
}

// SlotLabel renders the weekday and hour of a forecast entry, e.g. "Monday 12h"
func SlotLabel(t time.Time) string {
	return fmt.Sprintf("%s %dh", Weekday(t), t.Hour())
}
