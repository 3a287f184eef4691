package probe

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// helperReply is a canned helper query result.
type helperReply struct {
	out   string
	err   error
	block bool // wait for the context to expire
}

// fakeSystem is an in-memory System for platform-independent stage tests.
type fakeSystem struct {
	mu       sync.Mutex
	env      map[string]string
	paths    map[string]string // executable name -> resolved path
	symlinks map[string]string
	dirs     map[string]bool
	files    map[string]string
	home     string
	replies  map[string]helperReply // "path args..." -> reply
	queried  []string
}

var _ System = (*fakeSystem)(nil)

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		env:      map[string]string{},
		paths:    map[string]string{},
		symlinks: map[string]string{},
		dirs:     map[string]bool{},
		files:    map[string]string{},
		home:     "/home/user",
		replies:  map[string]helperReply{},
	}
}

// install makes names resolvable under /usr/bin.
func (f *fakeSystem) install(names ...string) *fakeSystem {
	for _, name := range names {
		f.paths[name] = "/usr/bin/" + name
	}

	return f
}

// xdgTerminalExecScript stands in for a helper release that knows --print-id.
const xdgTerminalExecScript = `#!/bin/sh
case "$1" in
--print-id) print_id=1 ;;
esac
`

// installXdgTerminalExec installs an xdg-terminal-exec that supports --print-id.
func (f *fakeSystem) installXdgTerminalExec() *fakeSystem {
	f.install(xdgTerminalExec)
	f.files[f.paths[xdgTerminalExec]] = xdgTerminalExecScript

	return f
}

func (f *fakeSystem) reply(cmdline string, r helperReply) *fakeSystem {
	f.replies[cmdline] = r

	return f
}

func (f *fakeSystem) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.queried...)
}

func (f *fakeSystem) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]

	return v, ok
}

func (f *fakeSystem) LookPath(file string) (string, error) {
	if strings.Contains(file, "/") {
		for _, p := range f.paths {
			if p == file {
				return file, nil
			}
		}

		return "", fs.ErrNotExist
	}

	if p, ok := f.paths[file]; ok {
		return p, nil
	}

	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
}

func (f *fakeSystem) Stat(name string) (fs.FileInfo, error) {
	if f.dirs[name] {
		return fakeDirInfo(filepath.Base(name)), nil
	}

	return nil, fs.ErrNotExist
}

func (f *fakeSystem) EvalSymlinks(path string) (string, error) {
	if target, ok := f.symlinks[path]; ok {
		return target, nil
	}

	return path, nil
}

func (f *fakeSystem) ReadFile(name string) ([]byte, error) {
	if data, ok := f.files[name]; ok {
		return []byte(data), nil
	}

	return nil, fs.ErrNotExist
}

func (f *fakeSystem) UserHomeDir() (string, error) {
	return f.home, nil
}

func (f *fakeSystem) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.queried = append(f.queried, cmdline)
	r, ok := f.replies[cmdline]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("exit status 1")
	}

	if r.block {
		<-ctx.Done()

		return nil, ctx.Err()
	}

	return []byte(r.out), r.err
}

type fakeDirInfo string

func (i fakeDirInfo) Name() string       { return string(i) }
func (i fakeDirInfo) Size() int64        { return 0 }
func (i fakeDirInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o755 }
func (i fakeDirInfo) ModTime() time.Time { return time.Time{} }
func (i fakeDirInfo) IsDir() bool        { return true }
func (i fakeDirInfo) Sys() any           { return nil }

// writeScript writes an executable shell script into dir.
func writeScript(dir, name, body string) (string, error) {
	path := filepath.Join(dir, name)

	//nolint:gosec // test helper scripts must be executable
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		return "", err
	}

	return path, nil
}
