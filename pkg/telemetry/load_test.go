package telemetry

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run_on_bb.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_RoundTrip(t *testing.T) {
	path := writeLog(t, "1.0;2.0;1.1;2.1;0.05\n2.0;3.0;2.2;3.1;0.10\n")

	log, err := Load(path)
	require.NoError(t, err)

	want := &Log{
		GX:  []float64{1.0, 2.0},
		GY:  []float64{2.0, 3.0},
		PX:  []float64{1.1, 2.2},
		PY:  []float64{2.1, 3.1},
		Phi: []float64{0.05, 0.10},
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PreservesLineOrder(t *testing.T) {
	const n = 50
	var sb strings.Builder
	for i := 0; i < n; i++ {
		f := float64(i)
		sb.WriteString(strings.Join([]string{
			strconv.FormatFloat(f, 'g', -1, 64),
			strconv.FormatFloat(f+0.25, 'g', -1, 64),
			strconv.FormatFloat(f+0.5, 'g', -1, 64),
			strconv.FormatFloat(f+0.75, 'g', -1, 64),
			strconv.FormatFloat(-f/100, 'g', -1, 64),
		}, ";"))
		sb.WriteString("\n")
	}

	log, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, n, log.Len())

	for _, name := range Fields() {
		assert.Len(t, log.Column(name), n, "column %s", name)
	}
	for i := 0; i < n; i++ {
		f := float64(i)
		want := Sample{GX: f, GY: f + 0.25, PX: f + 0.5, PY: f + 0.75, Phi: -f / 100}
		assert.Equal(t, want, log.Sample(i), "sample %d", i)
	}
}

func TestParse_Empty(t *testing.T) {
	log, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, log.Len())
	for _, name := range Fields() {
		assert.Empty(t, log.Column(name), "column %s", name)
	}
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	input := "# gx;gy;px;py;phi\n\n1;2;3;4;5\n\n 6 ; 7;8 ;9;10 \n"

	log, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, log.Len())
	assert.Equal(t, Sample{GX: 1, GY: 2, PX: 3, PY: 4, Phi: 5}, log.Sample(0))
	assert.Equal(t, Sample{GX: 6, GY: 7, PX: 8, PY: 9, Phi: 10}, log.Sample(1))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  error
		message string
	}{
		{
			name:    "non-numeric token",
			input:   "1;2;3;4;5\n1;2;x;4;5\n",
			target:  strconv.ErrSyntax,
			message: "line 2: field px",
		},
		{
			name:    "nan",
			input:   "1;2;3;4;5\n1;2;3;4;NaN\n",
			target:  ErrNotFinite,
			message: "line 2: field phi",
		},
		{
			name:    "infinity",
			input:   "-inf;2;3;4;5\n",
			target:  ErrNotFinite,
			message: "line 1: field gx",
		},
		{
			name:    "overflow",
			input:   "1;1e400;3;4;5\n",
			target:  strconv.ErrRange,
			message: "line 1: field gy",
		},
		{
			name:   "too few fields",
			input:  "1;2;3;4\n",
			target: csv.ErrFieldCount,
		},
		{
			name:   "too many fields",
			input:  "1;2;3;4;5;6\n",
			target: csv.ErrFieldCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, log)
			assert.ErrorIs(t, err, tt.target)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	log, err := Load(filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, err)
	assert.Nil(t, log)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_ErrorNamesPath(t *testing.T) {
	path := writeLog(t, "1;2;3;4;nope\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestLog_Column(t *testing.T) {
	log := &Log{}
	log.Append(Sample{GX: 1, GY: 2, PX: 3, PY: 4, Phi: 5})

	tests := []struct {
		field    Field
		expected float64
	}{
		{GoalX, 1},
		{GoalY, 2},
		{PosX, 3},
		{PosY, 4},
		{Phi, 5},
	}

	for _, tt := range tests {
		got := log.Column(tt.field)
		if len(got) != 1 || got[0] != tt.expected {
			t.Errorf("Column(%s) = %v, want [%v]", tt.field, got, tt.expected)
		}
	}

	if got := log.Column("theta"); got != nil {
		t.Errorf("Column(theta) = %v, want nil", got)
	}
}
