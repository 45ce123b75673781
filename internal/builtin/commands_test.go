// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/vfs"
)

// testEnv is a HandlerContext wired to observable session state.
type testEnv struct {
	hc      *HandlerContext
	chdirs  []string
	history []string
}

func newTestEnv(dir string) *testEnv {
	env := &testEnv{}
	env.hc = &HandlerContext{
		FS:      vfs.Seed(),
		Dir:     dir,
		Home:    vfs.HomeDir,
		User:    "user",
		Host:    "devifyx",
		Clock:   clock.NewFake(time.Time{}),
		Chdir:   func(d string) { env.chdirs = append(env.chdirs, d) },
		History: func() []string { return env.history },
	}
	return env
}

func (e *testEnv) run(name string, args ...string) Outcome {
	ctx := WithHandlerContext(context.Background(), e.hc)
	return DefaultRegistry.Run(ctx, name, args)
}

func TestLs(t *testing.T) {
	t.Parallel()

	readme := len("Welcome to DevifyX Terminal!")
	config := len(`{"theme": "dark", "font": "monospace"}`)

	tests := []struct {
		name string
		dir  string
		args []string
		want string
	}{
		{
			name: "home directory",
			dir:  "/home/user",
			want: strings.Join([]string{
				"drwxr-xr-x 1 user user     4096 10/15/2026 documents",
				"drwxr-xr-x 1 user user     4096 10/15/2026 downloads",
				"drwxr-xr-x 1 user user     4096 10/15/2026 desktop",
				fmt.Sprintf("-rw-r--r-- 1 user user %8d 10/15/2026 readme.txt", readme),
				fmt.Sprintf("-rw-r--r-- 1 user user %8d 10/15/2026 config.json", config),
			}, "\n"),
		},
		{
			name: "root by path",
			dir:  "/home/user",
			args: []string{"/"},
			want: strings.Join([]string{
				"drwxr-xr-x 1 user user     4096 10/15/2026 home",
				"drwxr-xr-x 1 user user     4096 10/15/2026 usr",
				"drwxr-xr-x 1 user user     4096 10/15/2026 etc",
			}, "\n"),
		},
		{name: "empty directory", dir: "/home/user", args: []string{"documents"}, want: ""},
		{name: "empty directory absolute", dir: "/", args: []string{"/home/user/documents"}, want: ""},
		{name: "file echoes operand", dir: "/", args: []string{"/home/user/readme.txt"}, want: "/home/user/readme.txt"},
		{name: "relative file echoes operand", dir: "/etc", args: []string{"./hosts"}, want: "./hosts"},
		{name: "missing", dir: "/", args: []string{"nope"}, want: "ls: cannot access 'nope': No such file or directory"},
		{name: "parent", dir: "/usr/bin", args: []string{".."}, want: strings.Join([]string{
			"drwxr-xr-x 1 user user     4096 10/15/2026 bin",
			"drwxr-xr-x 1 user user     4096 10/15/2026 lib",
		}, "\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := newTestEnv(tt.dir).run("ls", tt.args...)
			if got.Kind != OutcomeText {
				t.Fatalf("ls kind = %s, want text", got.Kind)
			}
			if got.Text != tt.want {
				t.Errorf("ls %v =\n%s\nwant\n%s", tt.args, got.Text, tt.want)
			}
		})
	}
}

func TestCd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dir       string
		args      []string
		wantText  string
		wantDir   string
		wantChdir bool
	}{
		{name: "no args goes home", dir: "/usr/bin", wantDir: "/home/user", wantChdir: true},
		{name: "no args from root", dir: "/", wantDir: "/home/user", wantChdir: true},
		{name: "relative", dir: "/home/user", args: []string{"documents"}, wantDir: "/home/user/documents", wantChdir: true},
		{name: "parent", dir: "/home/user", args: []string{".."}, wantDir: "/home", wantChdir: true},
		{name: "absolute unnormalized", dir: "/", args: []string{"//usr/./lib/"}, wantDir: "/usr/lib", wantChdir: true},
		{name: "root parent", dir: "/", args: []string{".."}, wantDir: "/", wantChdir: true},
		{name: "missing", dir: "/home/user", args: []string{"nope"}, wantText: "cd: nope: No such file or directory", wantDir: "/home/user"},
		{name: "file", dir: "/home/user", args: []string{"readme.txt"}, wantText: "cd: readme.txt: Not a directory", wantDir: "/home/user"},
		{name: "through file", dir: "/", args: []string{"/etc/hosts/x"}, wantText: "cd: /etc/hosts/x: No such file or directory", wantDir: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.dir)
			got := env.run("cd", tt.args...)
			if got != Text(tt.wantText) {
				t.Errorf("cd %v = %+v, want text %q", tt.args, got, tt.wantText)
			}
			if env.hc.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", env.hc.Dir, tt.wantDir)
			}
			if tt.wantChdir {
				if len(env.chdirs) != 1 || env.chdirs[0] != tt.wantDir {
					t.Errorf("Chdir calls = %v, want [%s]", env.chdirs, tt.wantDir)
				}
			} else if len(env.chdirs) != 0 {
				t.Errorf("Chdir should not be called, got %v", env.chdirs)
			}
		})
	}
}

func TestCat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing operand", want: "cat: missing file operand"},
		{name: "file", args: []string{"readme.txt"}, want: "Welcome to DevifyX Terminal!"},
		{name: "absolute file", args: []string{"/etc/hosts"}, want: "127.0.0.1 localhost"},
		{name: "relative climb", args: []string{"../../etc/hosts"}, want: "127.0.0.1 localhost"},
		{name: "missing file", args: []string{"nope.txt"}, want: "cat: nope.txt: No such file or directory"},
		{name: "directory", args: []string{"documents"}, want: "cat: documents: Is a directory"},
		{name: "only first operand", args: []string{"readme.txt", "/etc/hosts"}, want: "Welcome to DevifyX Terminal!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("/home/user")
			if got := env.run("cat", tt.args...); got != Text(tt.want) {
				t.Errorf("cat %v = %+v, want text %q", tt.args, got, tt.want)
			}
			if env.hc.Dir != "/home/user" {
				t.Errorf("cat changed Dir to %q", env.hc.Dir)
			}
		})
	}
}

func TestCat_EmptyFile(t *testing.T) {
	t.Parallel()

	root := vfs.NewDirectory()
	if err := root.Add("empty", vfs.NewFile("")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	env := newTestEnv("/")
	env.hc.FS = vfs.NewTree(root)

	if got := env.run("cat", "empty"); got != Text("") {
		t.Errorf("cat empty = %+v, want empty text", got)
	}
}

func TestSimulatedMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  string
		args []string
		want string
	}{
		{cmd: "mkdir", want: "mkdir: missing operand"},
		{cmd: "mkdir", args: []string{"projects"}, want: "mkdir: created directory 'projects'"},
		{cmd: "touch", want: "touch: missing file operand"},
		{cmd: "touch", args: []string{"notes.txt"}, want: "touch: created file 'notes.txt'"},
		{cmd: "rm", want: "rm: missing operand"},
		{cmd: "rm", args: []string{"readme.txt"}, want: "rm: removed 'readme.txt'"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("/home/user")
			if got := env.run(tt.cmd, tt.args...); got != Text(tt.want) {
				t.Errorf("%s %v = %+v, want text %q", tt.cmd, tt.args, got, tt.want)
			}
		})
	}
}

func TestSimulatedMutations_LeaveTreeUntouched(t *testing.T) {
	t.Parallel()

	env := newTestEnv("/home/user")
	env.run("mkdir", "projects")
	env.run("touch", "notes.txt")
	env.run("rm", "readme.txt")

	if _, ok := env.hc.FS.Lookup("/home/user/projects"); ok {
		t.Error("mkdir should not create a directory")
	}
	if _, ok := env.hc.FS.Lookup("/home/user/notes.txt"); ok {
		t.Error("touch should not create a file")
	}
	if got := env.run("cat", "readme.txt"); got.Text != "Welcome to DevifyX Terminal!" {
		t.Errorf("rm should not remove readme.txt, cat = %q", got.Text)
	}
}

func TestStaticCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  string
		args []string
		want string
	}{
		{cmd: "pwd", want: "/usr/lib"},
		{cmd: "whoami", want: "user"},
		{cmd: "echo", args: []string{"hello", "world"}, want: "hello world"},
		{cmd: "echo", want: ""},
		{cmd: "uname", want: "Linux devifyx 5.15.0-generic x86_64 GNU/Linux"},
		{cmd: "exit", want: "Goodbye! Terminal session ended."},
		{cmd: "date", want: "Thu Oct 15 2026 10:00:00 GMT+0000 (UTC)"},
		{cmd: "ps", want: psText},
		{cmd: "help", args: []string{"ignored"}, want: helpText},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			t.Parallel()

			if got := newTestEnv("/usr/lib").run(tt.cmd, tt.args...); got != Text(tt.want) {
				t.Errorf("%s %v = %+v, want text %q", tt.cmd, tt.args, got, tt.want)
			}
		})
	}
}

func TestTop_EmbedsCurrentTime(t *testing.T) {
	t.Parallel()

	got := newTestEnv("/").run("top")
	wantFirst := "top - 10:00:00 AM up 1 day, 2:34, 1 user, load average: 0.15, 0.10, 0.05"
	first, rest, _ := strings.Cut(got.Text, "\n")
	if first != wantFirst {
		t.Errorf("first line = %q, want %q", first, wantFirst)
	}
	if rest != topBody {
		t.Errorf("body = %q, want %q", rest, topBody)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	if got := newTestEnv("/").run("clear"); !got.IsSuppressed() {
		t.Errorf("clear = %+v, want suppressed", got)
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	env := newTestEnv("/")
	if got := env.run("history"); got != Text("") {
		t.Errorf("empty history = %+v, want empty text", got)
	}

	env.history = []string{"ls", "cd /etc", "history"}
	want := "1   ls\n2   cd /etc\n3   history"
	if got := env.run("history"); got != Text(want) {
		t.Errorf("history = %q, want %q", got.Text, want)
	}
}

func TestGetHandlerContext_Default(t *testing.T) {
	t.Parallel()

	hc := GetHandlerContext(context.Background())
	if hc.Dir != vfs.HomeDir || hc.Home != vfs.HomeDir {
		t.Errorf("default Dir/Home = %q/%q, want %q", hc.Dir, hc.Home, vfs.HomeDir)
	}
	if got := DefaultRegistry.Run(context.Background(), "cat", []string{"readme.txt"}); got.Text != "Welcome to DevifyX Terminal!" {
		t.Errorf("cat without HandlerContext = %q", got.Text)
	}
}
