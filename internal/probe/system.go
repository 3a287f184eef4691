package probe

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// helperWaitDelay bounds how long a killed helper may keep its output pipes
// open before they are closed forcibly.
const helperWaitDelay = 250 * time.Millisecond

// System is the read-only view of the host that stages probe.
type System interface {
	// LookupEnv returns the value of an environment variable.
	LookupEnv(key string) (string, bool)

	// LookPath resolves an executable name on PATH. Names containing a path
	// separator are checked directly.
	LookPath(file string) (string, error)

	// Stat returns file information for name.
	Stat(name string) (fs.FileInfo, error)

	// EvalSymlinks returns the path after resolving symbolic links.
	EvalSymlinks(path string) (string, error)

	// ReadFile returns the contents of a configuration file.
	ReadFile(name string) ([]byte, error)

	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// Output runs a helper in query mode and returns its standard output.
	// The helper must be terminated when ctx is done.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osSystem implements System on top of the running process.
type osSystem struct{}

// Compile-time verification that osSystem implements System.
var _ System = osSystem{}

// OSSystem returns the System backed by the real environment, PATH and
// filesystem.
func OSSystem() System {
	return osSystem{}
}

func (osSystem) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osSystem) LookPath(file string) (string, error) { return exec.LookPath(file) }

func (osSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (osSystem) EvalSymlinks(path string) (string, error) { return filepath.EvalSymlinks(path) }

func (osSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (osSystem) UserHomeDir() (string, error) { return os.UserHomeDir() }

func (osSystem) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	//nolint:gosec // G204: helper names are fixed, only their resolved path varies
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = helperWaitDelay

	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	return out, err
}
