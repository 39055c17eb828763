package weather

import (
	"context"
	"strings"

	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

// Input holds the location the model asks about.
type Input struct {
	City string `json:"city" jsonschema_description:"City name, for example 'Paris' or 'Tokyo'"`
}

// conditions holds typical conditions for cities the planner is asked about
// most often. Unknown cities fall through to a generic seasonal answer.
var conditions = map[string]string{
	"paris":     "Sunny, 22°C",
	"london":    "Overcast, 16°C",
	"tokyo":     "Partly cloudy, 24°C",
	"kyoto":     "Clear, 26°C",
	"rome":      "Sunny, 28°C",
	"barcelona": "Sunny, 25°C",
	"new york":  "Partly cloudy, 21°C",
	"sydney":    "Clear, 19°C",
	"bangkok":   "Humid, 32°C",
	"reykjavik": "Windy, 8°C",
}

const fallback = "Mild, 20°C (seasonal average)"

// NewTool returns the get_weather tool. Reports are static typical conditions;
// the tool exists so itineraries can mention weather without a paid API.
func NewTool() (tool.Definition, error) {
	return tool.New("get_weather", Lookup,
		tool.WithDescription("Returns current weather conditions for a city."),
	)
}

// Lookup returns the canned conditions for the city, or a seasonal average
// when the city is not in the table.
func Lookup(ctx context.Context, input Input) (string, error) {
	city := strings.ToLower(strings.TrimSpace(input.City))
	if report, ok := conditions[city]; ok {
		return report, nil
	}
	return fallback, nil
}
