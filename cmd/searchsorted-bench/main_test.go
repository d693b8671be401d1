package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortsearch"
	"github.com/hupe1980/sortsearch/bench"
)

func TestRun_PrintsOneBlockPerStrategy(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(t.Context(), []string{
		"-a-sizes", "100,1000",
		"-v-sizes", "10",
		"-iters", "2",
		"-strategies", "binary,native",
		"-side", "right",
	}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	binaryAt := strings.Index(out, "binary (right) results (a_size, v_size, time_ms):")
	nativeAt := strings.Index(out, "native (right) results (a_size, v_size, time_ms):")
	require.GreaterOrEqual(t, binaryAt, 0)
	require.Greater(t, nativeAt, binaryAt)
	assert.NotContains(t, out, "linear (")

	var rows int
	for _, line := range strings.Split(out, "\n") {
		if line == "" || strings.Contains(line, "results") {
			continue
		}
		n, m, ms, err := bench.ParseResultLine(line)
		require.NoError(t, err)
		assert.Contains(t, []int{100, 1000}, n)
		assert.Equal(t, 10, m)
		assert.GreaterOrEqual(t, ms, 0.0)
		rows++
	}
	assert.Equal(t, 4, rows)
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortsearch.prom")

	var stdout, stderr bytes.Buffer
	code := run(t.Context(), []string{
		"-a-sizes", "50",
		"-v-sizes", "5",
		"-iters", "1",
		"-dtype", "float64",
		"-strategies", "linear",
		"-metrics-file", path,
		"-log-format", "json",
		"-log-level", "info",
	}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sortsearch_bench_mean_milliseconds{a_size="50",side="left",strategy="linear",v_size="5"}`)
	assert.Contains(t, string(data), `sortsearch_queries_total{strategy="linear"} 10`)
	assert.Contains(t, stderr.String(), `"msg":"metrics written"`)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-bogus"}},
		{name: "bad side", args: []string{"-side", "middle"}},
		{name: "bad dtype", args: []string{"-dtype", "int8"}},
		{name: "bad strategy", args: []string{"-strategies", "native,quantum"}},
		{name: "no strategies", args: []string{"-strategies", ","}},
		{name: "negative size", args: []string{"-a-sizes", "10,-1"}},
		{name: "non-numeric size", args: []string{"-v-sizes", "ten"}},
		{name: "empty sizes", args: []string{"-v-sizes", ""}},
		{name: "zero iters", args: []string{"-iters", "0"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "bad log format", args: []string{"-log-format", "xml"}},
		{name: "positional", args: []string{"extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(t.Context(), tc.args, &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRun_RuntimeFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(t.Context(), []string{
		"-a-sizes", "10",
		"-v-sizes", "1000",
		"-iters", "1",
		"-memory-limit", "16",
	}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "memory limit exceeded")
	assert.Empty(t, stdout.String())
}

func TestParseArgs_Defaults(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseArgs(nil, &stderr)
	require.NoError(t, err)

	def := bench.DefaultConfig()
	assert.Equal(t, def.ASizes, cfg.bench.ASizes)
	assert.Equal(t, def.VSizes, cfg.bench.VSizes)
	assert.Equal(t, sortsearch.AllStrategies, cfg.bench.Strategies)
	assert.Equal(t, sortsearch.Left, cfg.bench.Side)
	assert.Equal(t, sortsearch.Float32, cfg.dtype)
	assert.Equal(t, 10, cfg.bench.Repeats)
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, 20 ,300,")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 20, 300}, got)

	_, err = parseInts("1,x")
	assert.Error(t, err)
}
