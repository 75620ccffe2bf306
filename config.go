package main

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

const defaultSessionTTL = 30 * time.Minute

type configuration struct {
	Token      string              `json:"token"`
	Documents  map[string]document `json:"documents"`
	Blacklist  snowflakeLookup     `json:"blacklist"`
	SessionTTL duration            `json:"session_ttl"`
}

// document is a file the tree can be built from. HTML documents are
// normalized into one token per line before building.
type document struct {
	Path string `json:"path"`
	HTML bool   `json:"html,omitempty"`
}

type snowflakeLookup map[discord.Snowflake]struct{}

func (l snowflakeLookup) MarshalJSON() ([]byte, error) {
	ids := make([]discord.Snowflake, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return json.Marshal(ids)
}

func (l *snowflakeLookup) UnmarshalJSON(b []byte) error {
	var ids []discord.Snowflake
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	if *l == nil {
		*l = make(snowflakeLookup, len(ids))
	}
	for _, id := range ids {
		(*l)[id] = struct{}{}
	}
	return nil
}

type duration struct {
	time.Duration
}

func (d duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func configFromBytes(b []byte) (configuration, error) {
	var cfg configuration
	if err := json.Unmarshal(b, &cfg); err != nil {
		return configuration{}, err
	}
	if cfg.Documents == nil {
		cfg.Documents = map[string]document{}
	}
	if cfg.Blacklist == nil {
		cfg.Blacklist = snowflakeLookup{}
	}
	if cfg.SessionTTL.Duration <= 0 {
		cfg.SessionTTL.Duration = defaultSessionTTL
	}
	return cfg, nil
}

func loadConfig(path string) (configuration, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return configuration{}, errors.Wrap(err, "could not open config")
	}
	cfg, err := configFromBytes(fileBytes)
	if err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return cfg, nil
}

func saveConfig(path string, cfg configuration) error {
	b, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	return errors.Wrap(os.WriteFile(path, b, 0o644), "could not write config")
}
