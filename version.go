package adr

import _ "embed"

// Version is the release of the adr module.
//
//go:embed VERSION
var Version string
