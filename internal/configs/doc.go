// Package configs manages configuration for sessiontrail.
//
// Project configuration is stored in TOML at .sessiontrail/config.toml:
//   - Project identity (name, UUID) written by `sessiontrail init`
//   - Optional verify_command for the deprecated verify pass-through
//
// Global settings are initialized at startup:
//   - UserTrailSettings: path to the user-level config directory
//   - ProjectTrailSettings: current project's paths and identity
//
// Call InitProjectSettings() before accessing ProjectTrailSettings. It
// walks up the directory tree to find the nearest .sessiontrail directory.
// The hook entry point does not depend on any of this: it resolves its
// paths per invocation and works in uninitialized projects too.
package configs
