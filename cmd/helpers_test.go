package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/video-transcriber/internal/config"
)

// setupCommandEnv isolates config lookup, logs and downloads in temp dirs and
// returns the download directory
func setupCommandEnv(t *testing.T) string {
	t.Helper()
	home, work, downloads := t.TempDir(), t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvServerURL, "")
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvLogFile, home+"/transcriber.log")
	t.Setenv(config.EnvDownloadDir, downloads)
	t.Chdir(work)

	// Flag variables outlive a single Execute
	verbose = false
	configPath = ""
	serverURL = config.DefaultServerURL
	timeout = config.DefaultTimeout
	format = "txt"
	outputPath = ""
	copyResult = false
	downloadText = false
	initGlobal = false
	initForce = false
	return downloads
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
