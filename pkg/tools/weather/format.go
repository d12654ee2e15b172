package weather

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Separator joins rendered alert and forecast blocks.
const Separator = "\n---\n"

const unknown = "Unknown"

// Field renders key from a JSON object, or fallback when the key is missing
// or null.
func Field(obj gjson.Result, key, fallback string) string {
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return fallback
	}
	return v.String()
}

// FormatAlert renders one alert feature. Missing properties fall back to
// placeholders rather than failing.
func FormatAlert(feature gjson.Result) string {
	props := feature.Get("properties")

	return fmt.Sprintf(
		"\nEvent: %s\nArea: %s\nSeverity: %s\nDescription: %s\nInstructions: %s\n",
		Field(props, "event", unknown),
		Field(props, "areaDesc", unknown),
		Field(props, "severity", unknown),
		Field(props, "description", "No description available"),
		Field(props, "instruction", "No specific instructions provided"),
	)
}

// FormatPeriod renders one forecast period.
func FormatPeriod(period gjson.Result) string {
	return fmt.Sprintf(
		"\n%s\nTemperature: %s°%s\nWind: %s %s\nForecast: %s\n",
		Field(period, "name", unknown),
		Field(period, "temperature", unknown),
		Field(period, "temperatureUnit", unknown),
		Field(period, "windSpeed", unknown),
		Field(period, "windDirection", unknown),
		Field(period, "detailedForecast", "No detailed forecast available"),
	)
}

func join(blocks []string) string {
	return strings.Join(blocks, Separator)
}
