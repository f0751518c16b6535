package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioVectors = "cat 1.0 0.5 0.0\ndog 0.2 0.9 0.1\nfish_tank 0.9 0.1 0.9\n"

// one dimension, values rising with the word: d > c > b > a
const ladderVectors = "a 1\nb 2\nc 3\nd 4\n"

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		vectors    string
		config     string
		env        map[string]string
		flags      []string
		noFile     bool
		extraArgs  []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "defaults",
			vectors:    scenarioVectors,
			wantCode:   0,
			wantStdout: "0\t['cat']\n1\t['dog', 'cat']\n2\t['dog']\n",
		},
		{
			name:     "empty file",
			vectors:  "",
			wantCode: 0,
		},
		{
			name:       "missing file",
			noFile:     true,
			wantCode:   1,
			wantStderr: "no such file or directory",
		},
		{
			name:       "parse error",
			vectors:    "cat 1.0\ndog nope\n",
			wantCode:   1,
			wantStderr: "invalid vector component",
		},
		{
			name:       "ragged rows",
			vectors:    "cat 1.0 2.0\ndog 3.0\n",
			wantCode:   1,
			wantStderr: "inconsistent dimensionality",
		},
		{
			name:       "too many arguments",
			vectors:    scenarioVectors,
			extraArgs:  []string{"other.txt"},
			wantCode:   2,
			wantStderr: "Usage: topwords",
		},
		{
			name:       "config file sets k",
			vectors:    ladderVectors,
			config:     "ranker:\n  top_k: 1\n",
			wantStdout: "0\t['d']\n",
		},
		{
			name:       "config file k zero",
			vectors:    ladderVectors,
			config:     "ranker:\n  top_k: 0\n",
			wantStdout: "0\t[]\n",
		},
		{
			name:       "env overrides config file",
			vectors:    ladderVectors,
			config:     "ranker:\n  top_k: 1\n",
			env:        map[string]string{"TOPWORDS_TOP_K": "2"},
			wantStdout: "0\t['d', 'c']\n",
		},
		{
			name:       "flag overrides env and config file",
			vectors:    ladderVectors,
			config:     "ranker:\n  top_k: 1\n",
			env:        map[string]string{"TOPWORDS_TOP_K": "2"},
			flags:      []string{"-k", "3"},
			wantStdout: "0\t['d', 'c', 'b']\n",
		},
		{
			name:       "tui disabled by flag",
			vectors:    ladderVectors,
			config:     "reporter:\n  type: tui\nranker:\n  top_k: 1\n",
			flags:      []string{"-tui=false"},
			wantStdout: "0\t['d']\n",
		},
		{
			name:       "unknown reporter",
			vectors:    ladderVectors,
			config:     "reporter:\n  type: html\n",
			wantCode:   1,
			wantStderr: "unknown reporter: html",
		},
		{
			name:       "invalid env",
			vectors:    ladderVectors,
			env:        map[string]string{"TOPWORDS_TOP_K": "lots"},
			wantCode:   1,
			wantStderr: "TOPWORDS_TOP_K",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("HOME", dir)
			chdir(t, dir)
			t.Setenv("TOPWORDS_TOP_K", "")
			t.Setenv("TOPWORDS_LOG_LEVEL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{}, tt.flags...)
			if tt.config != "" {
				cfgPath := filepath.Join(dir, "custom.yaml")
				require.NoError(t, os.WriteFile(cfgPath, []byte(tt.config), 0o644))
				args = append(args, "-config", cfgPath)
			}
			vecPath := filepath.Join(dir, "vectors.txt")
			if !tt.noFile {
				require.NoError(t, os.WriteFile(vecPath, []byte(tt.vectors), 0o644))
			}
			args = append(args, vecPath)
			args = append(args, tt.extraArgs...)

			var stdout, stderr bytes.Buffer
			code := run(args, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			assert.Equal(t, tt.wantStdout, stdout.String())
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunNoArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage: topwords")
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-tui")
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
