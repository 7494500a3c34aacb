// Package config loads Conduit server settings from a YAML file with
// environment variable overrides. Each attribute tracks where its value
// came from (default, file, or env), and an fsnotify watcher can reload
// the file while the server runs.
package config
