// package meta describes a single run of the generator: everything you might want to know about where an artifact came from, all in one place.
// It's too heavyweight to stamp into every page, so we log it once at start and only embed the ID.
// A search for 'metadata dump' in the logs, then, should get you the rest.
package meta

import (
	"os"
	"os/user"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Build is the metadata for one run.
type Build struct {
	ID        uuid.UUID // unique for every run
	StartTime time.Time
	Module    struct{ Path, Version string }
	OS        struct {
		Host string
		PID  int
		User string
	}
	Runtime struct{ GOARCH, GOOS, Version string }
}

// New collects metadata for a run starting at now. Lookups that fail are left blank: none of this is worth failing a run over.
func New(now time.Time) Build {
	b := Build{ID: uuid.New(), StartTime: now}
	if info, ok := debug.ReadBuildInfo(); ok {
		b.Module.Path, b.Module.Version = info.Main.Path, info.Main.Version
	}
	b.OS.Host, _ = os.Hostname()
	b.OS.PID = os.Getpid()
	if u, err := user.Current(); err == nil {
		b.OS.User = u.Username
	}
	b.Runtime.GOARCH, b.Runtime.GOOS, b.Runtime.Version = runtime.GOARCH, runtime.GOOS, runtime.Version()
	return b
}
