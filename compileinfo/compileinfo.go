package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// CompileInfo describes the build of the running gamstats binary, as recorded
// by the Go toolchain.
type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Package == "" {
		return "gamstats: no build information was embedded in this binary."
	}

	mod := ""
	if c.Modified {
		mod = " (with uncommitted changes)"
	}

	commit := c.Commit
	if commit == "" {
		commit = "an unknown commit"
	}

	return fmt.Sprintf("%s %s built with %s from %s%s at %s.", c.Package, c.Version, c.GoVersion, commit, mod, c.CommitTime)
}

func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
		Version:   z.Main.Version,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Fprint writes the build description as one line.
func Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
