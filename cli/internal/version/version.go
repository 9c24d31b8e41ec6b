// Package version reports the sqlkit build from the module and VCS metadata
// the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	goversion "github.com/hashicorp/go-version"
)

// Fallback is reported when the binary carries no module version, as with
// go run or a plain go build inside the repository.
const Fallback = "0.1.0"

const unknown = "unknown"

var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	Modified  bool
	GoVersion string
	Platform  string
}

// Get collects build information. Module versions lose their leading "v".
// Commits are shortened to 12 characters.
func Get() Info {
	info := Info{
		Version:   Fallback,
		Commit:    unknown,
		Date:      unknown,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	if v, err := goversion.NewVersion(bi.Main.Version); err == nil {
		info.Version = v.String()
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
			if len(info.Commit) > 12 {
				info.Commit = info.Commit[:12]
			}
		case "vcs.time":
			info.Date = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Current returns the version documents are checked against.
func Current() string { return Get().Version }

func (i Info) String() string {
	return fmt.Sprintf("sqlkit version %s (%s %s)", i.Version, i.Platform, i.GoVersion)
}

// FullString adds commit and date lines. A dirty work tree marks the
// commit.
func (i Info) FullString() string {
	commit := i.Commit
	if i.Modified {
		commit += " (modified)"
	}
	return fmt.Sprintf("%s\ncommit: %s\nbuilt:  %s", i, commit, i.Date)
}
