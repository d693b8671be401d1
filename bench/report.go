package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/sortsearch"
)

// WriteResults writes a result block preceded by an empty line:
//
//	<tag> (<side>) results (a_size, v_size, time_ms):
//	    1000       10    0.004
func WriteResults(w io.Writer, tag string, side sortsearch.Side, results []Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s (%s) results (a_size, v_size, time_ms):\n", tag, side)
	for _, r := range results {
		fmt.Fprintf(bw, "%8d %8d %8.3f\n", r.N, r.M, Milliseconds(r.Mean))
	}
	return bw.Flush()
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// ParseResultLine parses one data line written by WriteResults.
func ParseResultLine(line string) (n, m int, ms float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("result line: want 3 fields, got %d", len(fields))
	}
	if n, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("result line: a_size: %w", err)
	}
	if m, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("result line: v_size: %w", err)
	}
	if ms, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("result line: time_ms: %w", err)
	}
	return n, m, ms, nil
}
