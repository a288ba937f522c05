package gate

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/viper"
)

// AppConfig is the concrete Config implementation, loadable from file or
// environment via LoadConfig.
type AppConfig struct {
	SigningKey         string   `mapstructure:"signing_key"`
	SigningMethod      string   `mapstructure:"signing_method"`
	ContextKey         string   `mapstructure:"context_key"`
	TokenExpiration    int      `mapstructure:"token_expiration"`
	TokenLookup        string   `mapstructure:"token_lookup"`
	AuthScheme         string   `mapstructure:"auth_scheme"`
	Issuer             string   `mapstructure:"issuer"`
	Audience           []string `mapstructure:"audience"`
	APIBaseURL         string   `mapstructure:"api_base_url"`
	SessionPath        string   `mapstructure:"session_path"`
	LoginRoute         string   `mapstructure:"login_route"`
	HomeRoute          string   `mapstructure:"home_route"`
	ForumFallbackRoute string   `mapstructure:"forum_fallback_route"`
}

var _ Config = (*AppConfig)(nil)

// DefaultConfig returns a config with the fixed route and storage
// defaults the product uses.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		SigningMethod:      "HS256",
		ContextKey:         "jwt",
		TokenExpiration:    24,
		TokenLookup:        "header:Authorization,cookie:jwt",
		AuthScheme:         "Bearer",
		SessionPath:        ".shelfside/session.json",
		LoginRoute:         "/login",
		HomeRoute:          "/",
		ForumFallbackRoute: "/book-forum",
	}
}

// LoadConfig reads configuration from the given file (optional) and the
// SHELFSIDE_* environment, layered over DefaultConfig.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("shelfside")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("signing_method", defaults.SigningMethod)
	v.SetDefault("context_key", defaults.ContextKey)
	v.SetDefault("token_expiration", defaults.TokenExpiration)
	v.SetDefault("token_lookup", defaults.TokenLookup)
	v.SetDefault("auth_scheme", defaults.AuthScheme)
	v.SetDefault("session_path", defaults.SessionPath)
	v.SetDefault("login_route", defaults.LoginRoute)
	v.SetDefault("home_route", defaults.HomeRoute)
	v.SetDefault("forum_fallback_route", defaults.ForumFallbackRoute)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read config file")
		}
	}

	config := &AppConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to parse config")
	}
	return config, nil
}

func (c *AppConfig) GetSigningKey() string    { return c.SigningKey }
func (c *AppConfig) GetSigningMethod() string { return c.SigningMethod }
func (c *AppConfig) GetContextKey() string    { return c.ContextKey }
func (c *AppConfig) GetTokenExpiration() int  { return c.TokenExpiration }
func (c *AppConfig) GetTokenLookup() string   { return c.TokenLookup }
func (c *AppConfig) GetAuthScheme() string    { return c.AuthScheme }
func (c *AppConfig) GetIssuer() string        { return c.Issuer }
func (c *AppConfig) GetAudience() []string    { return c.Audience }
func (c *AppConfig) GetAPIBaseURL() string    { return c.APIBaseURL }
func (c *AppConfig) GetSessionPath() string   { return c.SessionPath }

func (c *AppConfig) GetLoginRoute() string {
	if c.LoginRoute == "" {
		return "/login"
	}
	return c.LoginRoute
}

func (c *AppConfig) GetHomeRoute() string {
	if c.HomeRoute == "" {
		return "/"
	}
	return c.HomeRoute
}

func (c *AppConfig) GetForumFallbackRoute() string {
	if c.ForumFallbackRoute == "" {
		return "/book-forum"
	}
	return c.ForumFallbackRoute
}
