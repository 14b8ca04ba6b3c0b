// Package telemetry loads the drive telemetry log written by the robot.
package telemetry

// Field identifies a column in the telemetry log.
type Field string

// Column names, in file order.
const (
	GoalX Field = "gx"
	GoalY Field = "gy"
	PosX  Field = "px"
	PosY  Field = "py"
	Phi   Field = "phi"
)

// Fields returns all column names in the order they appear on a line.
func Fields() []Field {
	return []Field{
		GoalX,
		GoalY,
		PosX,
		PosY,
		Phi,
	}
}

// Sample is one line of the log: goal and actual position in mm, heading in rad.
type Sample struct {
	GX, GY float64
	PX, PY float64
	Phi    float64
}

// Log holds the samples of a run as parallel columns.
// Index i of every column belongs to line i of the file.
type Log struct {
	GX  []float64
	GY  []float64
	PX  []float64
	PY  []float64
	Phi []float64
}

// Len returns the number of samples.
func (l *Log) Len() int {
	return len(l.GX)
}

// Append adds a sample to the end of every column.
func (l *Log) Append(s Sample) {
	l.GX = append(l.GX, s.GX)
	l.GY = append(l.GY, s.GY)
	l.PX = append(l.PX, s.PX)
	l.PY = append(l.PY, s.PY)
	l.Phi = append(l.Phi, s.Phi)
}

// Sample returns the i-th sample.
func (l *Log) Sample(i int) Sample {
	return Sample{
		GX:  l.GX[i],
		GY:  l.GY[i],
		PX:  l.PX[i],
		PY:  l.PY[i],
		Phi: l.Phi[i],
	}
}

// Column returns the values of a named column, or nil for an unknown name.
func (l *Log) Column(f Field) []float64 {
	switch f {
	case GoalX:
		return l.GX
	case GoalY:
		return l.GY
	case PosX:
		return l.PX
	case PosY:
		return l.PY
	case Phi:
		return l.Phi
	}
	return nil
}
