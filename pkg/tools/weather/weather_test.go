package weather

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-weather/pkg/nws"
)

// upstream fakes the NWS API. Routes map a request path to a status and
// body; unknown paths return 404.
type upstream struct {
	mu        sync.Mutex
	srv       *httptest.Server
	routes    map[string]route
	requested []string
}

type route struct {
	status int
	body   string
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()

	u := &upstream{routes: make(map[string]route)}
	u.srv = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.srv.Close)

	return u
}

func (u *upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requested = append(u.requested, r.URL.Path)
	rt, ok := u.routes[r.URL.Path]
	u.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if rt.status == 0 {
		rt.status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(rt.status)
	_, _ = w.Write([]byte(rt.body))
}

func (u *upstream) handle(path, body string) {
	u.handleStatus(path, http.StatusOK, body)
}

func (u *upstream) handleStatus(path string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = route{status: status, body: body}
}

func (u *upstream) paths() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.requested...)
}

func (u *upstream) client(logs *bytes.Buffer) *nws.Client {
	return nws.NewClient(nws.WithBaseURL(u.srv.URL), nws.WithLogger(log.New(logs)))
}

func newRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Name = name
	request.Params.Arguments = args
	return request
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "")
}
