// Package filesystem provides the disk-backed driven adapters:
//
//   - Reader: reads source documents as UTF-8 text
//   - Writer: replaces the bundle file atomically (temp file + rename)
//   - FindRoot: locates the repository root the presets are relative to
package filesystem
