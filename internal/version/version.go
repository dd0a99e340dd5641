// Package version records the CLI's build fingerprints.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version is the semantic version of the CLI; override at build time with
//
//	-ldflags "-X github.com/katalvlaran/boltgroup/internal/version.Version=1.2.3"
var Version = "0.1.0"

// GitCommit is an optional git commit hash.
var GitCommit = ""

// BuildDate is an optional build date in ISO-8601.
var BuildDate = ""

var segmentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Pretty renders Version with major/minor/patch in distinct colors. Strings
// that are not dotted triples come back unchanged.
func Pretty() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	for i, p := range parts {
		parts[i] = segmentColors[i].Sprint(p)
	}
	return strings.Join(parts, ".")
}
