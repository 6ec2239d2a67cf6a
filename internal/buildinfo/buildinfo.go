// Package buildinfo holds the version metadata of the lazylist binary.
// cmd/lazylist forwards its linker-injected variables with Set.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Placeholders used when the linker did not inject a value.
const (
	unsetCommit = "none"
	unsetValue  = "unknown"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

var current = Info{Version: "dev", Commit: unsetCommit, Date: unsetValue, BuiltBy: unsetValue}

// Set replaces the metadata.
func Set(version, commit, date, builtBy string) {
	current = Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy}
}

// Get returns the metadata.
func Get() Info { return current }

// Version returns the version string.
func Version() string { return current.Version }

// Enrich fills the commit and builder from the embedded module information
// when the linker left them unset.
func Enrich() {
	current = current.enriched(debug.ReadBuildInfo)
}

func (i Info) enriched(read func() (*debug.BuildInfo, bool)) Info {
	if i.Commit != unsetCommit && i.BuiltBy != unsetValue {
		return i
	}
	bi, ok := read()
	if !ok {
		return i
	}
	if i.Commit == unsetCommit {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				i.Commit = s.Value
			}
		}
	}
	if i.BuiltBy == unsetValue {
		i.BuiltBy = bi.GoVersion
	}
	return i
}

func (i Info) String() string {
	return fmt.Sprintf("lazylist %s\ncommit: %s\nbuilt: %s by %s", i.Version, i.Commit, i.Date, i.BuiltBy)
}

// Summary renders the metadata for the version command.
func Summary() string { return current.String() }
