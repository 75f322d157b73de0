// Package config loads pipeline configuration from YAML and assembles a
// running pipeline from it.
//
// All knobs have working defaults; an empty file (or none at all, via
// Default) yields a blocking 1024-slot ring draining to stdout. The
// LATELOG_CONFIG environment variable overrides the config file path and
// LATELOG_LEVEL the minimum level, so deployments can tune logging
// without rebuilding.
package config
