package main

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeLookup_MarshalJSON(t *testing.T) {
	lookup := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	d, err := json.Marshal(lookup)
	assert.NoError(t, err)
	assert.EqualValues(t, `["42","777","1337"]`, string(d))
}

func TestSnowflakeLookup_UnmarshalJSON(t *testing.T) {
	lookup := make(snowflakeLookup)
	input := []byte(`["1337","42","777"]`)

	err := json.Unmarshal(input, &lookup)
	assert.NoError(t, err)

	expected := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	assert.Equal(t, expected, lookup)
}

func TestConfigFromBytes(t *testing.T) {
	input := []byte(`
{
	"token": "abc",
	"documents": {
		"default": {"path": "docs/table.html"},
		"site": {"path": "docs/site.html", "html": true}
	},
	"blacklist": ["1337"],
	"session_ttl": "5m"
}
`)

	config, err := configFromBytes(input)
	assert.NoError(t, err)

	expected := configuration{
		Token: "abc",
		Documents: map[string]document{
			"default": {Path: "docs/table.html"},
			"site":    {Path: "docs/site.html", HTML: true},
		},
		Blacklist: snowflakeLookup{
			1337: {},
		},
		SessionTTL: duration{5 * time.Minute},
	}

	assert.Equal(t, expected, config)
}

func TestConfigDefaults(t *testing.T) {
	config, err := configFromBytes([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]document{}, config.Documents)
	assert.Equal(t, snowflakeLookup{}, config.Blacklist)
	assert.Equal(t, defaultSessionTTL, config.SessionTTL.Duration)
}

func TestConfigInvalid(t *testing.T) {
	_, err := configFromBytes([]byte(`{"session_ttl": "soon"}`))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	config := configuration{
		Token:      "abc",
		Documents:  map[string]document{"default": {Path: "a.html"}},
		Blacklist:  snowflakeLookup{42: {}},
		SessionTTL: duration{time.Hour},
	}

	require.NoError(t, saveConfig(path, config))

	loaded, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
