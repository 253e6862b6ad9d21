package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/anselusd/internal/common"
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "postgresql", cfg.Database.Engine)
	assert.Equal(t, "127.0.0.1", cfg.Database.IP)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "anselus", cfg.Database.Name)
	assert.Equal(t, "anselus", cfg.Database.User)
	assert.Empty(t, cfg.Database.Password, "password must have no default")

	assert.Equal(t, "private", cfg.Global.Registration)
	assert.Equal(t, 3, cfg.Security.FailureDelaySec)
	assert.Equal(t, 5, cfg.AccountCount)

	require.NoError(t, cfg.KDFParams().Validate())
}

func TestDSN_EscapesCredentials(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.User = "anselus"
	cfg.Database.Password = "p@ss/word:with#stuff"

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://anselus:")
	assert.Contains(t, dsn, "@127.0.0.1:5432/anselus?sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word", "raw password must not appear unescaped")
}

func TestValidate_RejectsNonPostgres(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Engine = "sqlite"

	err := cfg.Validate()
	require.True(t, errors.Is(err, common.ErrorBadConfig), "got %v", err)
}

func TestValidate_RejectsUnknownRegistrationMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Global.Registration = "invite-only"

	err := cfg.Validate()
	require.True(t, errors.Is(err, common.ErrorBadConfig), "got %v", err)
}

func TestValidate_AcceptsAllRegistrationModes(t *testing.T) {
	for _, mode := range []string{"private", "public", "network", "moderated"} {
		cfg := defaultConfig()
		cfg.Global.Registration = mode
		assert.NoError(t, cfg.Validate(), "mode %q", mode)
	}
}

func TestNormalize_ClampsOutOfRangeValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.Global.DefaultQuota = -1
	cfg.Security.FailureDelaySec = 300
	cfg.Security.MaxFailures = 0
	cfg.Security.LockoutDelayMin = -5
	cfg.Security.RegistrationDelayMin = -5
	cfg.AccountCount = 0

	warnings := cfg.Normalize()

	assert.Equal(t, 0, cfg.Global.DefaultQuota)
	assert.Equal(t, 60, cfg.Security.FailureDelaySec)
	assert.Equal(t, 1, cfg.Security.MaxFailures)
	assert.Equal(t, 0, cfg.Security.LockoutDelayMin)
	assert.Equal(t, 0, cfg.Security.RegistrationDelayMin)
	assert.Equal(t, 1, cfg.AccountCount)
	assert.Len(t, warnings, 6)
}

func TestNormalize_CleanConfigHasNoWarnings(t *testing.T) {
	cfg := defaultConfig()
	assert.Empty(t, cfg.Normalize())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"provision"}

	cfg, warnings, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 5, cfg.AccountCount)
}
