/*
Package config provides immutable configuration snapshots for use as atom
values.

# Overview

Config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values. Its
Equal method makes it a natural atom value type: storing a freshly loaded but
unchanged snapshot suppresses the write, so listeners only fire on real
configuration changes.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "timeout": "30s",
	    "retries": 3,
	    "enabled": true,
	})

	timeout := cfg.Duration("timeout", 10*time.Second) // 30s
	retries := cfg.Int("retries", 5)                   // 3
	enabled := cfg.Bool("enabled", false)              // true
	missing := cfg.String("missing", "default")        // "default"

# Use With Atoms

	current, _ := config.FromFile("app.yaml")
	cfg := atomstate.New(current)

	sub := cfg.Subscribe(func(c config.Config) error {
	    applySettings(c)
	    return nil
	})
	defer sub.Unsubscribe()

	// On reload: identical file contents produce zero notifications.
	next, _ := config.FromFile("app.yaml")
	cfg.Set(next)

# Type Coercion

Duration handles multiple input types:
  - string: parsed with time.ParseDuration ("30s", "1h30m")
  - int/float64: interpreted as seconds
  - time.Duration: used directly

All accessors return the default value if the key is missing, the value has
the wrong type, or the conversion would lose precision (e.g. float to int
with a fractional part).

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation. However, if the original map is modified
externally, behavior is undefined.
*/
package config
