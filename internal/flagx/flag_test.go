package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-c", "-k", "secret"},
			allowedFlags: []string{"-c", "-k"},
			want:         []string{"-c", "-k", "secret"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-t", "10", "-t", "20"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t", "10", "-t", "20"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFile([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFile([]string{"-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigFile([]string{"-c", "/path/1.json", "-config=/path/2.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1", "-a", "http://h"}))
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, ".env.local", EnvFile([]string{"-a", "http://h", "-e", ".env.local"}))
	assert.Equal(t, "prod.env", EnvFile([]string{"-env=prod.env"}))
	assert.Empty(t, EnvFile(nil))
}
