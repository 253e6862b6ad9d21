// Package config handles configuration for the provisioning tool, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/anselusd/internal/common"
	"github.com/dmitrijs2005/anselusd/internal/cryptox"
)

// DatabaseConfig selects the relational store holding the workspace tables.
type DatabaseConfig struct {
	Engine   string `json:"engine"`
	IP       string `json:"ip"`
	Port     string `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// NetworkConfig is carried for parity with the server's config file; the
// provisioning tool itself never listens.
type NetworkConfig struct {
	ListenIP string `json:"listen_ip"`
	Port     string `json:"port"`
}

// GlobalConfig holds server-wide settings.
type GlobalConfig struct {
	WorkspaceDir string `json:"workspace_dir"`
	Registration string `json:"registration"`
	DefaultQuota int    `json:"default_quota"`
}

// SecurityConfig holds login and registration throttling settings.
type SecurityConfig struct {
	FailureDelaySec      int `json:"failure_delay_sec"`
	MaxFailures          int `json:"max_failures"`
	LockoutDelayMin      int `json:"lockout_delay_min"`
	RegistrationDelayMin int `json:"registration_delay_min"`
}

// KDFConfig exposes the Argon2id cost parameters so a slow test box can turn
// them down. Values are validated by the password hasher at startup.
type KDFConfig struct {
	Time      uint32 `json:"time"`
	MemoryKiB uint32 `json:"memory_kib"`
	Threads   uint8  `json:"threads"`
}

// Config holds runtime settings for the provisioning tool. Overlay order:
// defaults, JSON file (-c/-config), environment (ANSELUS_ prefix, e.g.
// ANSELUS_DATABASE_PASSWORD), then command-line flags.
type Config struct {
	Database     DatabaseConfig `json:"database"`
	Network      NetworkConfig  `json:"network"`
	Global       GlobalConfig   `json:"global"`
	Security     SecurityConfig `json:"security"`
	KDF          KDFConfig      `json:"kdf"`
	AccountCount int            `json:"account_count"`
}

// LoadDefaults populates Config with the stock development values. The
// database password has no default on purpose.
func (c *Config) LoadDefaults() {
	c.Database = DatabaseConfig{
		Engine: "postgresql",
		IP:     "127.0.0.1",
		Port:   "5432",
		Name:   "anselus",
		User:   "anselus",
	}
	c.Network = NetworkConfig{ListenIP: "127.0.0.1", Port: "2001"}
	c.Global = GlobalConfig{
		WorkspaceDir: "/var/anselus",
		Registration: "private",
		DefaultQuota: 0,
	}
	c.Security = SecurityConfig{
		FailureDelaySec:      3,
		MaxFailures:          5,
		LockoutDelayMin:      15,
		RegistrationDelayMin: 15,
	}
	p := cryptox.InteractiveParams()
	c.KDF = KDFConfig{Time: p.Time, MemoryKiB: p.MemoryKiB, Threads: p.Threads}
	c.AccountCount = 5
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
// Validation failures abort startup.
func LoadConfig() (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}
	parseFlags(cfg)

	warnings := cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, warnings, nil
}

// Validate rejects configurations the tool cannot run with.
func (c *Config) Validate() error {
	if strings.ToLower(c.Database.Engine) != "postgresql" {
		return fmt.Errorf("%w: unsupported database engine %q", common.ErrorBadConfig, c.Database.Engine)
	}
	switch c.Global.Registration {
	case "private", "public", "network", "moderated":
	default:
		return fmt.Errorf("%w: invalid registration mode %q", common.ErrorBadConfig, c.Global.Registration)
	}
	return nil
}

// Normalize clamps out-of-range settings to usable values and returns a
// warning message per adjustment.
func (c *Config) Normalize() []string {
	var warnings []string

	if c.Global.DefaultQuota < 0 {
		c.Global.DefaultQuota = 0
		warnings = append(warnings, "negative quota value, assuming zero")
	}
	if c.Security.FailureDelaySec > 60 {
		c.Security.FailureDelaySec = 60
		warnings = append(warnings, "limiting maximum failure delay to 60")
	}
	if c.Security.MaxFailures < 1 {
		c.Security.MaxFailures = 1
		warnings = append(warnings, "invalid login failure maximum, setting to 1")
	} else if c.Security.MaxFailures > 10 {
		c.Security.MaxFailures = 10
		warnings = append(warnings, "limiting login failure maximum to 10")
	}
	if c.Security.LockoutDelayMin < 0 {
		c.Security.LockoutDelayMin = 0
		warnings = append(warnings, "negative lockout delay, setting to zero")
	}
	if c.Security.RegistrationDelayMin < 0 {
		c.Security.RegistrationDelayMin = 0
		warnings = append(warnings, "negative registration delay, setting to zero")
	}
	if c.AccountCount < 1 {
		c.AccountCount = 1
		warnings = append(warnings, "account count must be at least 1")
	}

	return warnings
}

// DSN renders the database settings as a pgx connection URL. Credentials are
// URL-escaped, so passwords may contain any characters.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.IP + ":" + c.Database.Port,
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// KDFParams converts the KDF section into hasher parameters.
func (c *Config) KDFParams() cryptox.Argon2Params {
	return cryptox.Argon2Params{
		Time:      c.KDF.Time,
		MemoryKiB: c.KDF.MemoryKiB,
		Threads:   c.KDF.Threads,
	}
}
