// Package assets holds embedded static files printed on documents.
package assets

import (
	"embed"
	"encoding/base64"
	"sync"
)

//go:embed logo.svg
var files embed.FS

var (
	logoOnce sync.Once
	logoURI  string
)

// LogoDataURI returns the company logo as an inline data URI so rendered
// documents never fetch anything over the network. The encoding happens once.
func LogoDataURI() string {
	logoOnce.Do(func() {
		raw, err := files.ReadFile("logo.svg")
		if err != nil {
			return
		}
		logoURI = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(raw)
	})
	return logoURI
}
