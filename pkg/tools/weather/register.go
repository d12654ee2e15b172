package weather

import (
	"github.com/charmbracelet/log"
	"github.com/theapemachine/mcp-server-weather/pkg/tools"
)

// RegisterWeatherTools returns the weather tools backed by client.
func RegisterWeatherTools(client Fetcher, logger *log.Logger, periods int) []tools.Tool {
	return []tools.Tool{
		NewAlertsTool(client, logger),
		NewForecastTool(client, logger, periods),
	}
}
