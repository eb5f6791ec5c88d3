package cmd

import (
	"bytes"
	"testing"

	"github.com/pders01/notes/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resetFlags clears every package-level flag value between runs
func resetFlags() {
	noteID = optionalInt{}
	noteTitle = optionalString{}
	noteMsg = optionalString{}
	noteDate = optionalString{}
	listJSON = false
	listToon = false
	readJSON = false
	readToon = false
	cfgFile = ""
	storePath = ""

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})

	// a previous run may have silenced usage on the command it executed
	rootCmd.SilenceUsage = false
	for _, c := range rootCmd.Commands() {
		c.SilenceUsage = false
	}
}

// setupWorkspace moves the test into a fresh directory with default config
func setupWorkspace(t *testing.T) *testutil.TempWorkspace {
	t.Helper()

	ws := testutil.NewTempWorkspace(t)
	t.Cleanup(ws.Cleanup)

	viper.Reset()
	t.Cleanup(viper.Reset)

	resetFlags()
	t.Cleanup(resetFlags)

	return ws
}

// newTestCommand returns a command whose output is captured
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

// addNote runs the add command and fails the test on error
func addNote(t *testing.T, title, body string) string {
	t.Helper()

	resetFlags()
	noteTitle.Set(title)
	noteMsg.Set(body)
	defer resetFlags()

	cmd, out := newTestCommand()
	if err := runAdd(cmd, []string{}); err != nil {
		t.Fatalf("add command failed: %v", err)
	}
	return out.String()
}

// execute runs the full command tree with args, as the binary would
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	resetFlags()
	defer resetFlags()

	// nil args would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
