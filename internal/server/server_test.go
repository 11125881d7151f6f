package server

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/config"
	"sensor-compare.klederson.com/internal/sensor"
)

type viewResponse struct {
	Mode        string        `json:"mode"`
	Factor      float64       `json:"factor"`
	FactorValid bool          `json:"factorValid"`
	Selected    []compare.Row `json:"selected"`
	All         []compare.Row `json:"all"`
	Sort        struct {
		Primary   string `json:"primary"`
		Direction string `json:"direction"`
	} `json:"sort"`
	Display compare.Display `json:"display"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	c, err := sensor.Default()
	if err != nil {
		t.Fatal(err)
	}
	return New(c, config.Default())
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func rowModels(rows []compare.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Model
	}
	return out
}

func createSession(t *testing.T, app *fiber.App) (string, viewResponse) {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/v1/sessions", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session status = %d", resp.StatusCode)
	}
	var out struct {
		ID   string       `json:"id"`
		View viewResponse `json:"view"`
	}
	decode(t, resp, &out)
	if out.ID == "" {
		t.Fatal("empty session id")
	}
	return out.ID, out.View
}

func TestHealth(t *testing.T) {
	resp := do(t, newTestApp(t), http.MethodGet, "/health/live", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestListSensors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		target string
		status int
		want   []string
	}{
		{
			name:   "search and sort",
			target: "/api/v1/sensors?search=arri&sort=area&dir=desc",
			status: http.StatusOK,
			want:   []string{"Alexa 65", "Alexa Mini LF", "Alexa 35"},
		},
		{
			name:   "sort without direction is ascending",
			target: "/api/v1/sensors?search=pocket&sort=diagonal",
			status: http.StatusOK,
			want:   []string{"Pocket Cinema 4K", "Pocket Cinema 6K"},
		},
		{
			name:   "unknown column",
			target: "/api/v1/sensors?sort=weight",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown direction",
			target: "/api/v1/sensors?sort=area&dir=sideways",
			status: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, tt.target, "")
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.want == nil {
				return
			}
			var out struct {
				Sensors []compare.Row `json:"sensors"`
			}
			decode(t, resp, &out)
			if got := rowModels(out.Sensors); !slices.Equal(got, tt.want) {
				t.Errorf("sensors = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionFlow(t *testing.T) {
	app := newTestApp(t)
	id, view := createSession(t, app)
	base := "/api/v1/sessions/" + id

	if len(view.Selected) != 4 || view.Mode != "proportional" || !view.FactorValid {
		t.Fatalf("initial view: %d selected, mode %q", len(view.Selected), view.Mode)
	}

	resp := do(t, app, http.MethodPost, base+"/sensors/Alexa%2035/toggle", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle status = %d", resp.StatusCode)
	}
	decode(t, resp, &view)
	if len(view.Selected) != 5 {
		t.Errorf("selected after toggle = %v", rowModels(view.Selected))
	}

	resp = do(t, app, http.MethodPost, base+"/logos/Sony/toggle", "")
	decode(t, resp, &view)
	if len(view.Selected) != 8 {
		t.Errorf("selected after logo toggle = %d, want 8", len(view.Selected))
	}

	resp = do(t, app, http.MethodPost, base+"/sort/area", "")
	decode(t, resp, &view)
	if view.Sort.Primary != "area" || view.Sort.Direction != "asc" {
		t.Errorf("sort = %+v, want area asc", view.Sort)
	}

	resp = do(t, app, http.MethodPut, base+"/search", `{"search":"FX"}`)
	decode(t, resp, &view)
	if got := rowModels(view.All); !slices.Equal(got, []string{"FX6", "FX3"}) {
		t.Errorf("search FX sorted by area = %v", got)
	}

	resp = do(t, app, http.MethodPut, base+"/display", `{"realPhysicalSize":true,"screenSize":"24"}`)
	decode(t, resp, &view)
	if view.Mode != "physical" || !view.FactorValid || !view.Display.ScreenValid {
		t.Errorf("display view = mode %q valid %v %+v", view.Mode, view.FactorValid, view.Display)
	}

	resp = do(t, app, http.MethodGet, base+"/export.csv", "")
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("export content type = %q", ct)
	}
	line, _ := bufio.NewReader(resp.Body).ReadString('\n')
	resp.Body.Close()
	if !strings.HasPrefix(line, "logo,model,selected") {
		t.Errorf("export header = %q", line)
	}

	resp = do(t, app, http.MethodDelete, base, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d", resp.StatusCode)
	}
	resp = do(t, app, http.MethodGet, base+"/view", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("view after delete status = %d", resp.StatusCode)
	}
}

func TestSessionErrors(t *testing.T) {
	app := newTestApp(t)
	id, _ := createSession(t, app)
	base := "/api/v1/sessions/" + id

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/api/v1/sessions/nope/view", "", http.StatusNotFound},
		{"unknown sensor", http.MethodPost, base + "/sensors/Nope/toggle", "", http.StatusNotFound},
		{"unknown column", http.MethodPost, base + "/sort/weight", "", http.StatusBadRequest},
		{"bad search body", http.MethodPut, base + "/search", "{", http.StatusBadRequest},
		{"bad display body", http.MethodPut, base + "/display", "[1]", http.StatusBadRequest},
		{"delete unknown", http.MethodDelete, "/api/v1/sessions/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, tt.method, tt.target, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestViewportQuery(t *testing.T) {
	app := newTestApp(t)
	id, _ := createSession(t, app)

	// Alexa Mini LF is the widest default: 720/36.7 < 700/25.54.
	resp := do(t, app, http.MethodGet, "/api/v1/sessions/"+id+"/view?width=720&height=700", "")
	var view viewResponse
	decode(t, resp, &view)
	want := 720 / 36.7
	if d := view.Factor - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("factor = %v, want %v", view.Factor, want)
	}
}

func TestSessionStore(t *testing.T) {
	c, err := sensor.Default()
	if err != nil {
		t.Fatal(err)
	}
	store := NewSessionStore(c, 24)
	a, b := store.Create(), store.Create()
	if a == b || store.Len() != 2 {
		t.Fatalf("ids %q %q, len %d", a, b, store.Len())
	}
	if err := store.With("missing", func(*compare.Session) error { return nil }); err != ErrSessionNotFound {
		t.Errorf("With(missing) = %v", err)
	}
	if !store.Delete(a) || store.Delete(a) {
		t.Error("Delete should succeed once")
	}
}
