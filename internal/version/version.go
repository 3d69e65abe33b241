package version

import (
	"encoding/csv"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
)

// Build-time variables injected via -ldflags, e.g.
//
//	-X github.com/tbckr/dnsdumper/internal/version.Version=1.0.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const shortRevision = 7

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(bi)
	}
}

// fillFromBuildInfo replaces values still at their placeholder with module
// and VCS data from bi. Values set through ldflags are kept.
func fillFromBuildInfo(bi *debug.BuildInfo) {
	if v := bi.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = strings.TrimPrefix(v, "v")
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none" && s.Value != "":
			Commit = s.Value[:min(len(s.Value), shortRevision)]
		case s.Key == "vcs.time" && Date == "unknown" && s.Value != "":
			Date = s.Value
		}
	}
}

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String renders the one-line version banner.
func (i Info) String() string {
	return fmt.Sprintf("dnsdumper version %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// WriteText writes the banner for text output.
func (i Info) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, i.String())
	return err
}

// WritePlain writes the bare version number.
func (i Info) WritePlain(w io.Writer) error {
	_, err := fmt.Fprintln(w, i.Version)
	return err
}

// WriteCSV writes a header and a single row.
func (i Info) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll([][]string{{"Version", "Commit", "Date"}, {i.Version, i.Commit, i.Date}}); err != nil {
		return err
	}
	return cw.Error()
}
