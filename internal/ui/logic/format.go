package logic

import (
	"fmt"
	"math"
	"strconv"

	"weathergrip/internal/domain"
)

// TemperatureUnit selects how temperature-like fields are displayed
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
)

// UnitForSystem maps a config units value ("metric", "imperial") to a temperature unit
func UnitForSystem(system string) TemperatureUnit {
	if system == "imperial" {
		return Fahrenheit
	}
	return Celsius
}

// ResultFields are the display strings of the result panel
type ResultFields struct {
	LocationName    string
	LocationDetails string
	LastUpdated     string
	IconURL         string
	IconAlt         string
	Temperature     string
	Condition       string
	FeelsLike       string
	Visibility      string
	Humidity        string
	Wind            string
	Pressure        string
	UVIndex         string
	CloudCover      string
	Precipitation   string
	DewPoint        string

	Class ConditionClass
}

// BuildResultFields maps a snapshot onto display strings.
// Temperature-like fields are rounded to whole degrees; everything else keeps source precision.
func BuildResultFields(s domain.WeatherSnapshot, unit TemperatureUnit) ResultFields {
	return ResultFields{
		LocationName:    s.Name,
		LocationDetails: fmt.Sprintf("%s, %s", s.Region, s.Country),
		LastUpdated:     "Last updated: " + s.LastUpdated,
		IconURL:         s.ConditionIcon,
		IconAlt:         s.ConditionText,
		Temperature:     FormatTemperature(s.TempC, unit),
		Condition:       s.ConditionText,
		FeelsLike:       FormatTemperature(s.FeelsLikeC, unit),
		Visibility:      FormatNumber(s.VisKm) + " km",
		Humidity:        FormatNumber(s.Humidity) + "%",
		Wind:            FormatWind(s.WindKph, s.WindDir, "km/h"),
		Pressure:        FormatNumber(s.PressureMb) + " mb",
		UVIndex:         FormatNumber(s.UV),
		CloudCover:      FormatNumber(s.Cloud) + "%",
		Precipitation:   FormatNumber(s.PrecipMm) + " mm",
		DewPoint:        FormatTemperature(s.DewPointC, unit),
		Class:           ClassifyCondition(s.ConditionText),
	}
}

// FormatTemperature renders a Celsius reading as a whole degree in unit, e.g. "21°C"
func FormatTemperature(celsius float64, unit TemperatureUnit) string {
	v := celsius
	if unit == Fahrenheit {
		v = CelsiusToFahrenheit(celsius)
	}
	return fmt.Sprintf("%s°%s", FormatNumber(RoundHalfUp(v)), unit)
}

// FormatWind renders speed and compass direction, e.g. "13.7 km/h WSW"
func FormatWind(speed float64, direction, unit string) string {
	return fmt.Sprintf("%s %s %s", FormatNumber(speed), unit, direction)
}

// FormatNumber prints the shortest decimal that round-trips, without exponent or trailing zeros
func FormatNumber(v float64) string {
	if v == 0 {
		// also turns -0 into "0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RoundHalfUp rounds to the nearest integer, with halves going towards +Inf (so -2.5 -> -2)
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// CelsiusToFahrenheit converts °C to °F
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}
