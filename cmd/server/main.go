// Command server is the main entry point for the weather MCP server
package main

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-weather/pkg/config"
	"github.com/theapemachine/mcp-server-weather/pkg/nws"
	"github.com/theapemachine/mcp-server-weather/pkg/tools"
	"github.com/theapemachine/mcp-server-weather/pkg/tools/weather"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout carries the protocol, so every log line goes to stderr
	logger := cfg.NewLogger(stderr)
	log.SetDefault(logger)
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger.StandardLog().Writer())

	client := nws.NewClient(
		nws.WithBaseURL(cfg.NWS.BaseURL),
		nws.WithUserAgent(cfg.NWS.UserAgent),
		nws.WithTimeout(cfg.NWS.Timeout),
		nws.WithLogger(logger),
	)

	registry := NewToolRegistry(newMCPServer())
	for _, tool := range weather.RegisterWeatherTools(client, logger, cfg.Forecast.Periods) {
		registry.RegisterTool(tool)
	}

	if cfg.Schema {
		return writeSchema(stdout, registry.Tools())
	}

	logger.Info("serving on stdio", "tools", len(registry.Tools()), "nws", cfg.NWS.BaseURL)
	if err := server.ServeStdio(registry.server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server shutdown complete")
	return nil
}

func newMCPServer() *server.MCPServer {
	return server.NewMCPServer(
		"weather",
		"1.0.0",
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)
}

func writeSchema(w io.Writer, registered []tools.Tool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tools.GetOpenAITools(registered))
}
