package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                      { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error    { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error       { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error      { return s.record("logout") }
func (s *stubExec) Scan(ctx context.Context) error        { return s.record("scan") }
func (s *stubExec) History(ctx context.Context) error     { return s.record("history") }
func (s *stubExec) Show(ctx context.Context) error        { return s.record("show") }
func (s *stubExec) Note(ctx context.Context) error        { return s.record("note") }
func (s *stubExec) Delete(ctx context.Context) error      { return s.record("delete") }
func (s *stubExec) Profile(ctx context.Context) error     { return s.record("profile") }
func (s *stubExec) EditProfile(ctx context.Context) error { return s.record("edit") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWith(t *testing.T, a execIface, input string) {
	t.Helper()
	runREPL(context.Background(), a, func() string { return "test" }, bufio.NewScanner(strings.NewReader(input)))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	_ = captureOutput(t)
	a := &stubExec{loggedIn: true}

	runWith(t, a, "scan\nhistory\nshow\nnote\ndelete\nprofile\nedit\nlogout\nexit\n")

	assert.Equal(t, []string{"scan", "history", "show", "note", "delete", "profile", "edit", "logout"}, a.calls)
}

func TestRunREPL_AnonymousCommands(t *testing.T) {
	_ = captureOutput(t)
	a := &stubExec{}

	runWith(t, a, "register\nlogin\nquit\n")

	assert.Equal(t, []string{"register", "login"}, a.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)
	a := &stubExec{}

	runWith(t, a, "frobnicate\nexit\n")

	assert.Empty(t, a.calls)
	assert.Contains(t, *lines, "Unknown command: frobnicate")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)
	runWith(t, &stubExec{}, "help\nexit\n")

	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "register, login, exit")

	lines2 := captureOutput(t)
	runWith(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined2 := strings.Join(*lines2, "\n")
	assert.Contains(t, joined2, "scan, history")
}

func TestRunREPL_BlankLinesAndEOF(t *testing.T) {
	_ = captureOutput(t)
	a := &stubExec{}

	// no exit command; loop must stop at EOF
	runWith(t, a, "\n\nlogin\n")

	assert.Equal(t, []string{"login"}, a.calls)
}
