// Package services implements the driving port interfaces.
// Services hold the bundle logic and call out to driven ports for I/O.
package services
