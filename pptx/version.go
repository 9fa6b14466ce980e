package pptx

import "fmt"

// Version information for the deck writer.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version is the full version string written to docProps/app.xml.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
