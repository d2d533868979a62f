// Package config provides TOML-backed configuration for the composer.
//
// A Source holds one parsed configuration tree and answers dotted-path
// queries. A Stack layers a session-specific source over the shared
// preset, first hit wins per path. The Watcher reloads a file on change
// for live reconfiguration.
package config
