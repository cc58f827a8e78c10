package client

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/config"
	"github.com/bobmcallan/uac-mcp/internal/models"
	"github.com/google/go-cmp/cmp"
)

// remoteFor returns a RemoteConfig pointing at the given test server.
func remoteFor(t *testing.T, srv *httptest.Server) config.RemoteConfig {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("failed to split host: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return config.RemoteConfig{
		Host:               host,
		Port:               port,
		TimeoutMS:          2000,
		DiscoveryTimeoutMS: 500,
	}
}

func newTestClient(t *testing.T, srv *httptest.Server) *UACClient {
	return NewUACClient(remoteFor(t, srv), common.NewSilentLogger())
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/scene/active" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected application/json content type, got %s", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"success":true,"data":{"name":"Main","isDirty":false},"timestamp":"2025-01-01T00:00:00.000Z"}`))
	}))
	defer srv.Close()

	out := newTestClient(t, srv).Get(context.Background(), "/api/scene/active")
	if out.Failure != FailureNone {
		t.Fatalf("expected no failure, got %s", out.Failure)
	}
	if !out.OK() {
		t.Fatal("expected success")
	}
	if out.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", out.StatusCode)
	}
	if got := string(out.Response.Data); got != `{"name":"Main","isDirty":false}` {
		t.Errorf("data not preserved verbatim: %s", got)
	}
}

func TestGet_PreservesQueryString(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"timestamp":"t"}`))
	}))
	defer srv.Close()

	newTestClient(t, srv).Get(context.Background(), "/api/assets/list?type=Material&folder=Assets%2FMats")
	if gotQuery != "type=Material&folder=Assets%2FMats" {
		t.Errorf("unexpected query: %s", gotQuery)
	}
}

func TestPost_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["name"] != "Cube" {
			t.Errorf("expected name=Cube, got %v", body["name"])
		}
		w.Write([]byte(`{"success":true,"data":{"created":true},"timestamp":"t"}`))
	}))
	defer srv.Close()

	out := newTestClient(t, srv).Post(context.Background(), "/api/gameobject/create", map[string]any{"name": "Cube"})
	if !out.OK() {
		t.Fatalf("expected success, got %+v", out.Response)
	}
}

func TestPost_NilBodySendsEmptyObject(t *testing.T) {
	var gotBody, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotMethod = r.Method
		w.Write([]byte(`{"success":true,"timestamp":"t"}`))
	}))
	defer srv.Close()

	newTestClient(t, srv).Post(context.Background(), "/api/scene/close", nil)
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotBody != "{}" {
		t.Errorf("expected {} body, got %q", gotBody)
	}
}

func TestGet_SendsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if len(b) != 0 {
			t.Errorf("expected empty GET body, got %q", string(b))
		}
		w.Write([]byte(`{"success":true,"timestamp":"t"}`))
	}))
	defer srv.Close()

	newTestClient(t, srv).Get(context.Background(), "/api/status")
}

func TestRequest_RemoteErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"GameObject 'Ghost' not found","errorCode":404,"timestamp":"t"}`))
	}))
	defer srv.Close()

	out := newTestClient(t, srv).Post(context.Background(), "/api/gameobject/delete", map[string]any{"name": "Ghost"})
	if out.Failure != FailureNone {
		t.Errorf("a well-formed error envelope is not a transport failure, got %s", out.Failure)
	}
	if out.OK() {
		t.Error("expected success=false")
	}
	if out.Response.Error != "GameObject 'Ghost' not found" {
		t.Errorf("unexpected error: %s", out.Response.Error)
	}
	if string(out.Response.ErrorCode) != "404" {
		t.Errorf("expected raw errorCode 404, got %s", out.Response.ErrorCode)
	}
	if out.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", out.StatusCode)
	}
}

func TestRequest_KeepsFieldsOutsideEnvelope(t *testing.T) {
	body := `{"success":false,"error":"boom","details":"Object 'Cube' not found in scene","hint":"check name","timestamp":"t"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	out := newTestClient(t, srv).Post(context.Background(), "/api/gameobject/delete", map[string]any{"name": "Cube"})
	if out.Failure != FailureNone {
		t.Fatalf("expected no failure, got %s", out.Failure)
	}
	if out.OK() || out.Response.Error != "boom" {
		t.Errorf("envelope fields not decoded: %+v", out.Response)
	}

	encoded, err := json.Marshal(out.Response)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got, want map[string]any
	json.Unmarshal(encoded, &got)
	json.Unmarshal([]byte(body), &want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response not echoed in full (-want +got):\n%s", diff)
	}
}

func TestRequest_UnparseableBody(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		success bool
	}{
		{"ok plain text", http.StatusOK, "pong", true},
		{"server error html", http.StatusInternalServerError, "<html>boom</html>", false},
		{"json array", http.StatusOK, `[1,2,3]`, true},
		{"json string", http.StatusOK, `"done"`, true},
		{"json null", http.StatusBadGateway, `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			out := newTestClient(t, srv).Get(context.Background(), "/api/ping")
			if out.Failure != FailureParse {
				t.Errorf("expected parse failure, got %s", out.Failure)
			}
			if out.OK() != tt.success {
				t.Errorf("expected success=%v, got %v", tt.success, out.OK())
			}
			var data map[string]string
			if err := json.Unmarshal(out.Response.Data, &data); err != nil {
				t.Fatalf("data is not JSON: %v", err)
			}
			if data["raw"] != tt.body {
				t.Errorf("expected raw %q, got %q", tt.body, data["raw"])
			}
			if out.Response.Timestamp == "" {
				t.Error("expected a timestamp")
			}
		})
	}
}

func TestRequest_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := remoteFor(t, srv)
	cfg.TimeoutMS = 50
	c := NewUACClient(cfg, common.NewSilentLogger())

	out := c.Get(context.Background(), "/api/scene/active")
	if out.Failure != FailureTimeout {
		t.Fatalf("expected timeout, got %s", out.Failure)
	}
	if out.OK() {
		t.Error("expected success=false")
	}
	if !strings.Contains(out.Response.Error, "timeout after 50ms") {
		t.Errorf("expected timeout message, got %q", out.Response.Error)
	}
	if !strings.Contains(out.Response.Error, Website) {
		t.Errorf("expected guidance link, got %q", out.Response.Error)
	}
}

func TestRequest_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	out := newTestClient(t, srv).Get(ctx, "/api/scene/active")
	if out.Failure != FailureCanceled {
		t.Fatalf("expected canceled, got %s", out.Failure)
	}
	if out.OK() {
		t.Error("expected success=false")
	}
}

func TestRequest_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := remoteFor(t, srv)
	srv.Close()

	c := NewUACClient(cfg, common.NewSilentLogger())
	out := c.Get(context.Background(), "/api/status")
	if out.Failure != FailureConnection {
		t.Fatalf("expected connection failure, got %s", out.Failure)
	}
	if !strings.HasPrefix(out.Response.Error, "Cannot connect to Unity at "+c.BaseURL()) {
		t.Errorf("unexpected message: %q", out.Response.Error)
	}
}

func TestDiscover_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/discover" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"success": true,
			"data": {
				"endpoints": [
					{"path": "/api/scene/active", "method": "GET", "category": "scene", "description": "Active scene"},
					{"path": "/api/gameobject/create", "method": "POST", "category": "gameobject", "description": "Create"}
				],
				"totalCount": 2,
				"categories": ["scene", "gameobject"],
				"message": "ok"
			},
			"timestamp": "t"
		}`))
	}))
	defer srv.Close()

	got := newTestClient(t, srv).Discover(context.Background())
	want := []models.EndpointInfo{
		{Path: "/api/scene/active", Method: "GET", Category: "scene", Description: "Active scene"},
		{Path: "/api/gameobject/create", Method: "POST", Category: "gameobject", Description: "Create"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_FailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"success false", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error":"nope","timestamp":"t"}`))
		}},
		{"missing endpoints", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{},"timestamp":"t"}`))
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("hello"))
		}},
		{"slow", func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			cfg := remoteFor(t, srv)
			cfg.DiscoveryTimeoutMS = 50
			got := NewUACClient(cfg, common.NewSilentLogger()).Discover(context.Background())
			if got == nil {
				t.Fatal("expected non-nil empty slice")
			}
			if len(got) != 0 {
				t.Errorf("expected no endpoints, got %d", len(got))
			}
		})
	}
}

func TestIsConnected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"unityVersion":"6000.0.1f1"},"timestamp":"t"}`))
	}))
	defer srv.Close()

	if !newTestClient(t, srv).IsConnected(context.Background()) {
		t.Error("expected connected")
	}

	srv.Close()
	if newTestClient(t, srv).IsConnected(context.Background()) {
		t.Error("expected disconnected after server close")
	}
}

func TestFailureKind_String(t *testing.T) {
	kinds := map[FailureKind]string{
		FailureNone:       "none",
		FailureTimeout:    "timeout",
		FailureCanceled:   "canceled",
		FailureConnection: "connection",
		FailureParse:      "parse",
		FailureKind(99):   "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("FailureKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
