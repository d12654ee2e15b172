// Package weather provides the NWS-backed alert and forecast tools
package weather

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-weather/pkg/nws"
	"github.com/theapemachine/mcp-server-weather/pkg/tools"
	"github.com/theapemachine/mcp-server-weather/pkg/tools/utils"
	"github.com/tidwall/gjson"
)

const (
	msgAlertsUnavailable = "Unable to fetch alerts or no alerts found."
	msgNoActiveAlerts    = "No active alerts for this state."
)

// Fetcher is the part of the NWS client the tools depend on.
type Fetcher interface {
	Fetch(ctx context.Context, url string) nws.Response
	AlertsURL(area string) string
	PointsURL(latitude, longitude float64) string
}

// AlertsArgs describes the get_alerts arguments.
type AlertsArgs struct {
	State string `json:"state" jsonschema_description:"Two-letter US state code (e.g. CA, NY)"`
}

// AlertsTool implements get_alerts.
type AlertsTool struct {
	*tools.BaseTool
	client Fetcher
	logger *log.Logger
}

// NewAlertsTool creates the get_alerts tool. A nil logger uses log.Default.
func NewAlertsTool(client Fetcher, logger *log.Logger) *AlertsTool {
	if logger == nil {
		logger = log.Default()
	}

	return &AlertsTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"get_alerts",
				mcp.WithDescription("Get weather alerts for a US state."),
				mcp.WithString(
					"state",
					mcp.Required(),
					mcp.Description("Two-letter US state code (e.g. CA, NY)"),
				),
			),
			&AlertsArgs{},
		),
		client: client,
		logger: logger,
	}
}

// Handler processes get_alerts requests
func (tool *AlertsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := utils.GetRequiredStringParam(request, "state")
	if err != nil {
		return utils.HandleParameterError(tools.InvalidParams(err)), nil
	}

	logger := tool.logger.With("tool", tool.Name(), "call", uuid.NewString())
	logger.Debug("fetching alerts", "state", state)

	return tools.NewTextResult(tool.Alerts(log.WithContext(ctx, logger), state)), nil
}

// Alerts returns the active alerts for state as text. It always returns a
// message, including when the upstream call fails.
func (tool *AlertsTool) Alerts(ctx context.Context, state string) string {
	resp := tool.client.Fetch(ctx, tool.client.AlertsURL(state))
	if !resp.OK() || resp.Empty() || !resp.Has("features") {
		return msgAlertsUnavailable
	}

	features := resp.Get("features")

	switch {
	case features.Type == gjson.Null:
		return msgNoActiveAlerts
	case !features.IsArray():
		return msgAlertsUnavailable
	}

	items := features.Array()
	if len(items) == 0 {
		return msgNoActiveAlerts
	}

	alerts := make([]string, 0, len(items))
	for _, feature := range items {
		alerts = append(alerts, FormatAlert(feature))
	}

	return join(alerts)
}
