package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ratgeo/src/rational"
)

func TestParseLine(t *testing.T) {
	for idx, tc := range []struct {
		line string
		want instruction
	}{
		{"frac 3 17", instruction{op: "frac", leftNum: 3, leftDen: 17}},
		{"frac -3 17", instruction{op: "frac", leftNum: -3, leftDen: 17}},
		{"mul 1/3 2/3", instruction{op: "mul", leftNum: 1, leftDen: 3, rightNum: 2, rightDen: 3}},
		{"div 1/6 2/3", instruction{op: "div", leftNum: 1, leftDen: 6, rightNum: 2, rightDen: 3}},
		{"divint 1/3 2", instruction{op: "divint", leftNum: 1, leftDen: 3, rightNum: 2, rightDen: 1}},
		{"intdiv 5 1/3", instruction{op: "intdiv", leftNum: 5, leftDen: 1, rightNum: 1, rightDen: 3}},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.line), func(t *testing.T) {
			got, err := parseLine(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	for idx, tc := range []struct {
		line, wantErr string
	}{
		{"frac 3", "want 3 fields, got 2"},
		{"frac 3 17 4", "want 3 fields, got 4"},
		{"frac 3 0", `"3/0" has a zero denominator`},
		{"recip 3 17", `unknown operation "recip"`},
		{"frac three 17", "invalid syntax"},
		{"mul 1:3 2/3", `"1:3" is not of the form N/D`},
		{"mul 1/3 2/x", "invalid syntax"},
		{"div 1/0 2/3", `"1/0" has a zero denominator`},
		{"divint 1/3 2/3", "invalid syntax"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.line), func(t *testing.T) {
			_, err := parseLine(tc.line)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseWorkload(t *testing.T) {
	const text = `# recorded session
frac 3 17

mul 1/3 2/3
	intdiv 5 1/3
`
	got, err := parseWorkload(strings.NewReader(text), "session.txt")
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "frac", got[0].op)
	require.Equal(t, "session.txt", got[0].source)
	require.Equal(t, 2, got[0].sourceLine)
	require.Equal(t, "mul", got[1].op)
	require.Equal(t, 4, got[1].sourceLine)
	require.Equal(t, "intdiv", got[2].op)
	require.Equal(t, 5, got[2].sourceLine)
}

func TestParseWorkloadError(t *testing.T) {
	_, err := parseWorkload(strings.NewReader("frac 3 17\nbogus line here\n"), "session.txt")
	require.ErrorContains(t, err, "session.txt:2:")
	require.ErrorContains(t, err, `unknown operation "bogus"`)
}

func TestSweep(t *testing.T) {
	sweepDenominator = 12
	workload, err := parseWorkload(strings.NewReader(`
frac 3 17
mul 1/3 2/3
divint 1/3 2
intdiv 1 5/12
`), "test")
	require.NoError(t, err)

	running := int64(1)
	violations, err := sweep(zerolog.Nop(), workload, &running)
	require.NoError(t, err)
	require.Equal(t, 3, violations)
	require.Equal(t, rational.LCM(rational.LCM(int64(17), 3), 5), running)
}

// Division by a zero rational has a fix factor of 0: no denominator makes it
// exact, and folding 0 into the accumulator would zero it and let the final
// report claim the workload is fine. The sweep must fail instead.
func TestSweepZeroDivisor(t *testing.T) {
	sweepDenominator = 12
	for idx, line := range []string{
		"div 1/3 0/5",
		"divint 1/3 0",
		"intdiv 1 0/5",
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, line), func(t *testing.T) {
			workload, err := parseWorkload(strings.NewReader(line+"\n"), "test")
			require.NoError(t, err)

			running := int64(1)
			_, err = sweep(zerolog.Nop(), workload, &running)
			require.ErrorContains(t, err, "test:1:")
			require.ErrorContains(t, err, "leaves a divisor of 0")
			require.Equal(t, int64(1), running)
		})
	}
}

func TestSweepExact(t *testing.T) {
	sweepDenominator = 12
	workload, err := parseWorkload(strings.NewReader(`
frac 1 3
mul 1/3 3/4
div 1/6 2/3
divint 1/3 2
intdiv 5 1/3
`), "test")
	require.NoError(t, err)

	running := int64(1)
	violations, err := sweep(zerolog.Nop(), workload, &running)
	require.NoError(t, err)
	require.Zero(t, violations)
	require.Equal(t, int64(1), running)
}
