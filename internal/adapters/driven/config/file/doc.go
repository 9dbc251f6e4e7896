// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - PresetStore: TOML catalogue of bundle presets, embedded from presets.toml
package file
