package cmd

import (
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "version flag",
			args: []string{"--version"},
			want: "dev",
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: "video-transcriber transcribe talk.mp4",
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandEnv(t)
			stdout, _, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(stdout, tt.want) {
				t.Errorf("output should contain %q, got:\n%s", tt.want, stdout)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"transcribe": false, "healthcheck": false, "config": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s command not registered", name)
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "server", "timeout"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	setupCommandEnv(t)
	_, _, err := execute(t, "transcribe", "clip.mp4", "--timeout", "0s")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("expected invalid configuration error, got %v", err)
	}
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	setupCommandEnv(t)
	_, _, err := execute(t, "config", "show", "--config", "does-not-exist.yaml")
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected load error, got %v", err)
	}
}
