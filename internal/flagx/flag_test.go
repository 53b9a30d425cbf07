package flagx

import (
	"os"
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
			args:         []string{"-c", "conf.json", "-s", "memory"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-s", "memory"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash-prefixed token is not a value",
			args:         []string{"-c", "--config=alt.json"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "--config=alt.json"},
		},
		{
			name:         "equals value may start with dashes",
			args:         []string{"--config=--weird.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--weird.json"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-d", "tasks.db", "-c", "conf.json", "--other", "x", "-s", "sqlite"},
			allowedFlags: []string{"-c", "-d", "-s"},
			want:         []string{"-d", "tasks.db", "-c", "conf.json", "-s", "sqlite"},
		},
		{
			name:         "repeated flag preserved",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
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

func TestLookupString(t *testing.T) {
	assert.Equal(t, "a.json", LookupString([]string{"-c", "a.json"}, "c", "config"))
	assert.Equal(t, "b.json", LookupString([]string{"--config=b.json"}, "c", "config"))
	assert.Equal(t, "2.json", LookupString([]string{"-c", "1.json", "-config", "2.json"}, "c", "config"))
	assert.Empty(t, LookupString([]string{"-s", "memory"}, "c", "config"))
	assert.Empty(t, LookupString([]string{"-c"}, "c", "config"))
}

func TestJsonConfigFlagsAndEnvFileFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"taskflow", "-c", "/path/conf.json", "-env", "/path/.env", "-s", "memory"}
	assert.Equal(t, "/path/conf.json", JsonConfigFlags())
	assert.Equal(t, "/path/.env", EnvFileFlags())

	os.Args = []string{"taskflow"}
	assert.Empty(t, JsonConfigFlags())
	assert.Empty(t, EnvFileFlags())
}
