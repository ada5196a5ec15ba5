package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seekdomains/internal/modkit"
	"seekdomains/internal/platform/config"
	phttp "seekdomains/internal/platform/net/http"
	"seekdomains/internal/platform/store"
	"seekdomains/internal/platform/store/sqlite"
	"seekdomains/internal/services/api/domains/domain"
	"seekdomains/internal/services/availability"
	"seekdomains/internal/services/namegen"

	"github.com/go-chi/chi/v5"
)

type stubGen struct{ names []string }

func (g stubGen) Generate(context.Context, namegen.Input) ([]string, error) { return g.names, nil }

type stubChk struct{ free map[string]bool }

func (c stubChk) Check(_ context.Context, names []string) ([]string, error) {
	var out []string
	for _, n := range names {
		if c.free[n] {
			out = append(out, n)
		}
	}
	return out, nil
}

func (c stubChk) CheckOne(_ context.Context, d string) (bool, error) { return c.free[d], nil }

func newDeps(t *testing.T) modkit.Deps {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return modkit.Deps{
		Cfg:     config.New(),
		DB:      store.NewSQLAdapter(db.DB, nil, 0),
		Dialect: store.DialectSQLite,
	}
}

func TestModule_NameAndPrefix(t *testing.T) {
	m := New(newDeps(t), Wiring{})
	if m.Name() != "domains" {
		t.Fatalf("name = %q", m.Name())
	}
	if m.Prefix() != "/" {
		t.Fatalf("prefix = %q", m.Prefix())
	}
	if _, ok := m.Ports().(Ports); !ok {
		t.Fatalf("ports type = %T", m.Ports())
	}

	p := New(newDeps(t), Wiring{}, WithPrefix("v2/"))
	if p.Prefix() != "/v2" {
		t.Fatalf("prefix = %q", p.Prefix())
	}
}

func TestModule_GenerateThenList(t *testing.T) {
	t.Setenv("CORE_API_DEFAULT_PAGE_SIZE", "")
	deps := newDeps(t)
	m := New(deps, Wiring{
		Generator: stubGen{names: []string{"tealeaf.com", "google.com", "brewly.io"}},
		Checker:   stubChk{free: map[string]bool{"tealeaf.com": true, "brewly.io": true}},
	})
	if err := m.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := http.Post(srv.URL+"/generate_and_check_domains", "application/json",
		strings.NewReader(`{"request":"a tea shop","accepted_tlds":["com","io"]}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d", res.StatusCode)
	}
	var gen struct {
		SearchRequestID string `json:"search_request_id"`
		DomainsFound    int    `json:"domains_found"`
	}
	if err := json.NewDecoder(res.Body).Decode(&gen); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gen.DomainsFound != 2 || gen.SearchRequestID == "" {
		t.Fatalf("generate result = %+v", gen)
	}

	lr, err := http.Get(srv.URL + "/available_domains?tld=io&search_request_id=" + gen.SearchRequestID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer lr.Body.Close()
	var list struct {
		Domains []struct {
			Domain string `json:"domain"`
		} `json:"domains"`
		Pagination struct {
			PageSize   int `json:"page_size"`
			TotalCount int `json:"total_count"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(lr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Pagination.TotalCount != 1 || len(list.Domains) != 1 || list.Domains[0].Domain != "brewly.io" {
		t.Fatalf("list = %+v", list)
	}
	if list.Pagination.PageSize != 64 {
		t.Fatalf("page size = %d", list.Pagination.PageSize)
	}
}

func TestModule_PageSizeFromEnv(t *testing.T) {
	t.Setenv("CORE_API_DEFAULT_PAGE_SIZE", "10")
	m := New(newDeps(t), Wiring{})
	if err := m.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	res, err := m.Service().List(context.Background(), domain.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Pagination.PageSize != 10 {
		t.Fatalf("page size = %d", res.Pagination.PageSize)
	}
}

func TestModule_MissingPipelineIsUnavailable(t *testing.T) {
	m := New(newDeps(t), Wiring{})
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := http.Post(srv.URL+"/generate_and_check_domains", "application/json", strings.NewReader(`{"request":"x"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

type portsModule struct {
	name  string
	ports any
}

func (m portsModule) MountRoutes(phttp.Router) {}
func (m portsModule) Ports() any               { return m.ports }
func (m portsModule) Name() string             { return m.name }

func TestWiringFrom(t *testing.T) {
	type genPorts struct{ Generator namegen.Generator }
	type chkPorts struct{ Checker availability.Checker }
	gen := portsModule{name: "namegen", ports: genPorts{Generator: stubGen{}}}
	chk := portsModule{name: "availability", ports: chkPorts{Checker: stubChk{}}}

	w, err := WiringFrom(chk, gen)
	if err != nil {
		t.Fatalf("wiring: %v", err)
	}
	if w.Generator == nil || w.Checker == nil {
		t.Fatalf("wiring = %+v", w)
	}

	if _, err := WiringFrom(gen); err == nil || !strings.Contains(err.Error(), "namegen") {
		t.Fatalf("missing checker: err = %v", err)
	}
	if _, err := WiringFrom(chk, portsModule{name: "empty"}); err == nil {
		t.Fatal("missing generator should fail")
	}
}
