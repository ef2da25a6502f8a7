package config

import (
	"testing"
	"time"

	"github.com/kbukum/gatewaykit/gateway"
	"github.com/kbukum/gatewaykit/session"
)

func TestGatewaysFile_Chains(t *testing.T) {
	f := &GatewaysFile{
		Base: Declaration{
			BaseURL: "https://api.test",
			Timeout: 30 * time.Second,
			Headers: map[string]string{"X-Tenant": "acme"},
		},
		Gateways: map[string]Declaration{
			"users":       {URL: "/users", Method: "GET"},
			"create-user": {URL: "/users", Method: "POST", Timeout: 5 * time.Second},
		},
	}

	chains, err := f.Chains()
	if err != nil {
		t.Fatalf("chains: %v", err)
	}
	if len(chains) != 2 {
		t.Fatalf("expected 2 chains, got %d", len(chains))
	}

	chain := chains["users"]
	if len(chain) != 2 {
		t.Fatalf("expected base + endpoint layers, got %d", len(chain))
	}
	if chain[0].BaseURL != "https://api.test" {
		t.Errorf("base layer lost its base url: %+v", chain[0])
	}
	if chain[1].URL != "/users" || chain[1].Method != gateway.MethodGet {
		t.Errorf("unexpected endpoint layer: %+v", chain[1])
	}
}

func TestGatewaysFile_ValidationRejectsBadDeclarations(t *testing.T) {
	cases := []struct {
		name string
		file GatewaysFile
	}{
		{"no gateways", GatewaysFile{}},
		{"unknown method", GatewaysFile{
			Gateways: map[string]Declaration{"users": {URL: "/users", Method: "FETCH"}},
		}},
		{"malformed base url", GatewaysFile{
			Gateways: map[string]Declaration{"users": {URL: "/users", Method: "GET", BaseURL: "not a url"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.file.Chains()
			if !gateway.IsConfiguration(err) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestDeclaration_BearerTokenAttachesAuthorizer(t *testing.T) {
	s, err := Declaration{URL: "/users", Method: "GET", BearerToken: "tok-1234"}.Spec()
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if s.Authorizer == nil {
		t.Error("expected an authorizer for the declared token")
	}
}

func TestLoadGateways(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "gateways.yml", `base:
  base_url: https://api.test
  timeout: 30s
gateways:
  users:
    url: /users
    method: GET
  create-user:
    url: /users
    method: POST
    timeout: 5s
`)

	reg := session.NewRegistry()
	gws, err := LoadGateways(reg, WithConfigFile(cfgFile))
	if err != nil {
		t.Fatalf("load gateways: %v", err)
	}
	if len(gws) != 2 {
		t.Fatalf("expected 2 gateways, got %d", len(gws))
	}

	cfg := gws["users"].(*gateway.Gateway).Config()
	if cfg.URL != "https://api.test/users" {
		t.Errorf("unexpected url %q", cfg.URL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}

	cfg = gws["create-user"].(*gateway.Gateway).Config()
	if cfg.Method != gateway.MethodPost {
		t.Errorf("unexpected method %q", cfg.Method)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("endpoint timeout must override the base, got %v", cfg.Timeout)
	}
}
