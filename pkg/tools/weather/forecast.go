package weather

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-weather/pkg/tools"
	"github.com/theapemachine/mcp-server-weather/pkg/tools/utils"
)

const (
	msgPointsUnavailable   = "Unable to fetch points data for this location."
	msgPointsInvalid       = "Invalid points data received: missing forecast information."
	msgForecastUnavailable = "Unable to fetch forecast data for this location."
	msgForecastInvalid     = "Invalid forecast data received: missing period information."
)

// DefaultPeriods is how many forecast periods are rendered unless configured.
const DefaultPeriods = 5

// ForecastArgs describes the get_forecast arguments.
type ForecastArgs struct {
	Latitude  float64 `json:"latitude" jsonschema_description:"Latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema_description:"Longitude of the location"`
}

// ForecastTool implements get_forecast.
type ForecastTool struct {
	*tools.BaseTool
	client  Fetcher
	logger  *log.Logger
	periods int
}

// NewForecastTool creates the get_forecast tool. A non-positive periods
// falls back to DefaultPeriods and a nil logger to log.Default.
func NewForecastTool(client Fetcher, logger *log.Logger, periods int) *ForecastTool {
	if logger == nil {
		logger = log.Default()
	}

	if periods <= 0 {
		periods = DefaultPeriods
	}

	return &ForecastTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"get_forecast",
				mcp.WithDescription("Get weather forecast for a location."),
				mcp.WithNumber(
					"latitude",
					mcp.Required(),
					mcp.Description("Latitude of the location"),
				),
				mcp.WithNumber(
					"longitude",
					mcp.Required(),
					mcp.Description("Longitude of the location"),
				),
			),
			&ForecastArgs{},
		),
		client:  client,
		logger:  logger,
		periods: periods,
	}
}

// Handler processes get_forecast requests
func (tool *ForecastTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	latitude, err := utils.GetRequiredFloat64Param(request, "latitude")
	if err != nil {
		return utils.HandleParameterError(tools.InvalidParams(err)), nil
	}

	longitude, err := utils.GetRequiredFloat64Param(request, "longitude")
	if err != nil {
		return utils.HandleParameterError(tools.InvalidParams(err)), nil
	}

	logger := tool.logger.With("tool", tool.Name(), "call", uuid.NewString())
	logger.Debug("fetching forecast", "latitude", latitude, "longitude", longitude)

	return tools.NewTextResult(tool.Forecast(log.WithContext(ctx, logger), latitude, longitude)), nil
}

// Forecast resolves the forecast URL for a coordinate through the points
// endpoint, then renders the first periods of that forecast.
func (tool *ForecastTool) Forecast(ctx context.Context, latitude, longitude float64) string {
	points := tool.client.Fetch(ctx, tool.client.PointsURL(latitude, longitude))
	if !points.OK() || points.Empty() {
		return msgPointsUnavailable
	}

	forecastURL := points.Get("properties.forecast").String()
	if forecastURL == "" {
		return msgPointsInvalid
	}

	forecast := tool.client.Fetch(ctx, forecastURL)
	if !forecast.OK() || forecast.Empty() {
		return msgForecastUnavailable
	}

	periods := forecast.Get("properties.periods")
	if !periods.IsArray() {
		return msgForecastInvalid
	}

	items := periods.Array()
	if len(items) > tool.periods {
		items = items[:tool.periods]
	}

	blocks := make([]string, 0, len(items))
	for _, period := range items {
		blocks = append(blocks, FormatPeriod(period))
	}

	return join(blocks)
}
