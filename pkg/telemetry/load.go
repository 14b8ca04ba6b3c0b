package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is where the robot writes its run log.
const DefaultPath = "./run_on_bb.log"

// ErrNotFinite is returned for NaN and infinite values.
var ErrNotFinite = errors.New("value is not finite")

const (
	separator = ';'
	comment   = '#'
)

// Load reads and parses the telemetry log at path.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open telemetry log: %w", err)
	}
	defer f.Close()

	log, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return log, nil
}

// Parse reads "gx;gy;px;py;phi" lines from r until EOF.
// Blank lines and lines starting with '#' are skipped. Any malformed line
// fails the whole parse.
func Parse(r io.Reader) (*Log, error) {
	cr := csv.NewReader(r)
	cr.Comma = separator
	cr.Comment = comment
	cr.FieldsPerRecord = len(Fields())
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	log := &Log{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read telemetry: %w", err)
		}

		var values [5]float64
		for i, token := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
			if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
				err = fmt.Errorf("%q: %w", token, ErrNotFinite)
			}
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, fmt.Errorf("line %d: field %s: %w", line, Fields()[i], err)
			}
			values[i] = v
		}

		log.Append(Sample{
			GX:  values[0],
			GY:  values[1],
			PX:  values[2],
			PY:  values[3],
			Phi: values[4],
		})
	}

	return log, nil
}
