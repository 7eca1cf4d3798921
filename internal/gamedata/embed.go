// Package gamedata provides the embedded game definitions - fleet ships,
// the terminal color theme, and audio cues - and the loaders for them.
package gamedata

import "embed"

// defsFS embeds the JSON definition files from this directory at build time.
//
//go:embed *.json
var defsFS embed.FS
