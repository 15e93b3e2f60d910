package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

const sample = `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 10

[logs]
level = "info"
file = ""

[metrics]
enabled = true
path = "/metrics"
service_name = "odonto_booking"

[clinic]
timezone = "America/Sao_Paulo"
default_procedure = "Consulta Padrão"
lookup_timeout_ms = 3000
demo_user_id = "demo"

[availability]
source = "static"
cache_size = 128
static_latency_ms = 300

[database]
host = "localhost"
port = 5432
user = "odonto"
password = "from-file"
dbname = "odonto"

[firebase]
credentials_file = "serviceAccount.json"
api_key = "file-key"
timeout = 5

[rate_limit]
enabled = true
requests_per_second = 1.5
burst = 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvFirebaseAPIKey, "")
	t.Setenv(EnvDatabasePassword, "")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "America/Sao_Paulo", cfg.Clinic.Timezone)
	assert.Equal(t, 3000, cfg.Clinic.LookupTimeoutMs)
	assert.Equal(t, AvailabilityStatic, cfg.Availability.Source)
	assert.Equal(t, 128, cfg.Availability.CacheSize)
	assert.Equal(t, "file-key", cfg.Firebase.APIKey)
	assert.InDelta(t, 1.5, cfg.RateLimit.RequestsPerSecond, 1e-9)
	assert.False(t, cfg.RateLimit.TrustProxyHeaders)
	assert.Equal(t, DefaultRateLimitClients, cfg.RateLimit.MaxClients)
}

func TestLoad_DefaultTimezone(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8080
[availability]
source = "static"
`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimezone, cfg.Clinic.Timezone)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvFirebaseAPIKey, "env-key")
	t.Setenv(EnvDatabasePassword, "env-pass")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Firebase.APIKey)
	assert.Equal(t, "env-pass", cfg.Database.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing file", ""},
		{"bad source", `
[server]
http_port = 8080
[clinic]
timezone = "UTC"
[availability]
source = "redis"
`},
		{"postgres without database", `
[server]
http_port = 8080
[clinic]
timezone = "UTC"
[availability]
source = "postgres"
`},
		{"no port", `
[clinic]
timezone = "UTC"
[availability]
source = "static"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.toml")
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "odonto", Password: "p@ss", DBName: "clinic"}
	assert.Equal(t, "postgres://odonto:p%40ss@db:5432/clinic?sslmode=disable", d.DSN())
}
