package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/kbukum/gatewaykit/gateway"
	"github.com/kbukum/gatewaykit/session"
	"github.com/kbukum/gatewaykit/validation"
)

// Declaration is one gateway layer as it appears in a declarations file.
// Zero-valued fields are unset and inherit from the base block.
type Declaration struct {
	URL        string            `yaml:"url" mapstructure:"url" json:"url"`
	Method     string            `yaml:"method" mapstructure:"method" json:"method" validate:"omitempty,oneof=GET POST PUT PATCH DELETE OPTIONS HEAD"`
	BaseURL    string            `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"omitempty,url"`
	Timeout    time.Duration     `yaml:"timeout" mapstructure:"timeout" json:"timeout" validate:"omitempty,min=0"`
	Headers    map[string]string `yaml:"headers" mapstructure:"headers" json:"headers"`
	SessionKey string            `yaml:"session_key" mapstructure:"session_key" json:"session_key"`
	// BearerToken attaches a static bearer credential to the gateway's
	// session. Prefer referencing it via an environment variable.
	BearerToken string `yaml:"bearer_token" mapstructure:"bearer_token" json:"bearer_token"`
}

// Spec converts a declaration into a resolver layer.
func (d Declaration) Spec() (gateway.Spec, error) {
	s := gateway.Spec{
		URL:        d.URL,
		Method:     gateway.Method(d.Method),
		BaseURL:    d.BaseURL,
		Timeout:    d.Timeout,
		Headers:    d.Headers,
		SessionKey: d.SessionKey,
	}
	if d.BearerToken != "" {
		auth, err := session.NewBearerAuthorizer(d.BearerToken)
		if err != nil {
			return gateway.Spec{}, err
		}
		s.Authorizer = auth
	}
	return s, nil
}

// GatewaysFile is the on-disk catalog of gateway declarations: a shared base
// block plus named endpoint blocks layered on top of it.
type GatewaysFile struct {
	Base     Declaration            `yaml:"base" mapstructure:"base" json:"base"`
	Gateways map[string]Declaration `yaml:"gateways" mapstructure:"gateways" json:"gateways" validate:"required,min=1,dive"`
}

// Validate checks the declared fields against their constraints.
func (f *GatewaysFile) Validate() error {
	return validation.Validate(f)
}

// Chains converts the file into per-gateway declaration chains, base layer
// first, ready to hand to the resolver.
func (f *GatewaysFile) Chains() (map[string][]gateway.Spec, error) {
	if err := f.Validate(); err != nil {
		return nil, gateway.NewConfigurationError(err.Error())
	}

	base, err := f.Base.Spec()
	if err != nil {
		return nil, gateway.NewConfigurationError(err.Error())
	}

	chains := make(map[string][]gateway.Spec, len(f.Gateways))
	for name, decl := range f.Gateways {
		s, err := decl.Spec()
		if err != nil {
			return nil, gateway.NewConfigurationError(fmt.Sprintf("gateway %s: %v", name, err))
		}
		chains[name] = []gateway.Spec{base, s}
	}
	return chains, nil
}

// Names lists the declared gateway names in stable order.
func (f *GatewaysFile) Names() []string {
	names := make([]string, 0, len(f.Gateways))
	for name := range f.Gateways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadGateways reads a declarations file and resolves every declared gateway
// against the registry. The returned map is keyed by gateway name.
func LoadGateways(reg *session.Registry, opts ...LoaderOption) (map[string]gateway.RequestGateway, error) {
	var file GatewaysFile
	if err := Load("gateways", &file, opts...); err != nil {
		return nil, gateway.NewConfigurationError(err.Error())
	}

	chains, err := file.Chains()
	if err != nil {
		return nil, err
	}

	out := make(map[string]gateway.RequestGateway, len(chains))
	for name, chain := range chains {
		g, err := gateway.Resolve(reg, chain)
		if err != nil {
			return nil, fmt.Errorf("config: gateway %s: %w", name, err)
		}
		out[name] = g
	}
	return out, nil
}
