package organizer

import "github.com/llehouerou/shelve/internal/errmsg"

// Report holds the outcome of a completed run. Path lists are relative to
// the destination root for moved files and to the source root otherwise.
type Report struct {
	Moved      []string
	Duplicates []string
	Sidecars   []string
	PrunedDirs []string
	BytesMoved int64

	// Notes are informational lines, currently tag reads that fell back to
	// the default labels. They are not failures: the files still moved.
	Notes []string

	Failures []Failure
}

// Failure records a per-file error that did not stop the run.
type Failure struct {
	Path string
	Op   errmsg.Op
	Err  error
}

// String returns the user-facing message for the failure.
func (f Failure) String() string {
	return errmsg.FormatWith(f.Op, f.Path, f.Err)
}

func (r *Report) fail(path string, op errmsg.Op, err error) {
	r.Failures = append(r.Failures, Failure{Path: path, Op: op, Err: err})
}
