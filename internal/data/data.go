// Package data embeds the bundled KOF97 roster. The filesystem is rooted at
// "kof97/" and holds one JSON record per character plus manifest.yaml.
package data

import "embed"

// Manifest is the path of the bundled manifest inside FS.
const Manifest = "kof97/manifest.yaml"

// FS contains the bundled character records.
//
//go:embed kof97
var FS embed.FS
