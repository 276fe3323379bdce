package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dictmark-dev/dictmark/pkg/profile"
	"github.com/dictmark-dev/dictmark/pkg/render"
)

func testServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(render.Config{})
	}
	srv := httptest.NewServer(New(opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postRender(t *testing.T, srv *httptest.Server, body string) (*http.Response, renderResponse) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/render", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /render: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, Options{})
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestRenderEndpoint(t *testing.T) {
	srv := testServer(t, Options{})

	resp, decoded := postRender(t, srv,
		`{"xml":"<sense><def>animal</def></sense>","profile":[{"nodeType":"def","order":1,"class":"definition"}]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if decoded.HTML != `<span class="definition">animal</span>` {
		t.Errorf("html = %q", decoded.HTML)
	}
	if decoded.Error != "" {
		t.Errorf("unexpected error field: %q", decoded.Error)
	}
}

func TestRenderEndpointDefaultProfile(t *testing.T) {
	srv := testServer(t, Options{
		DefaultProfile: profile.New(profile.Rule{NodeType: "def", Order: 1, Class: "fallback"}),
	})

	resp, decoded := postRender(t, srv, `{"xml":"<sense><def>animal</def></sense>"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(decoded.HTML, `class="fallback"`) {
		t.Errorf("default profile not applied: %q", decoded.HTML)
	}
}

func TestRenderEndpointBadBody(t *testing.T) {
	srv := testServer(t, Options{})

	resp, decoded := postRender(t, srv, `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if decoded.Error == "" {
		t.Error("expected error field")
	}
}

func TestRenderEndpointBadProfile(t *testing.T) {
	srv := testServer(t, Options{})

	resp, decoded := postRender(t, srv, `{"xml":"<def>x</def>","profile":{"rules":"nope"}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if decoded.Error == "" {
		t.Error("expected error field")
	}
}

func TestRenderEndpointMalformedEntryStillOK(t *testing.T) {
	// Malformed entries degrade inside the renderer; the endpoint never 500s.
	srv := testServer(t, Options{})

	resp, decoded := postRender(t, srv, `{"xml":"<entry><gloss>recoverable"}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(decoded.HTML, "recoverable") {
		t.Errorf("html = %q", decoded.HTML)
	}
}

func TestMediaServing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plant.png"), []byte("png bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	srv := testServer(t, Options{MediaDir: dir})

	resp, err := http.Get(srv.URL + "/media/plant.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestMediaDisabledWithoutDir(t *testing.T) {
	srv := testServer(t, Options{})

	resp, err := http.Get(srv.URL + "/media/plant.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("media route should not exist without a media dir")
	}
}
