/*
PURPOSE:
  Writes simulated flow series to a CSV file, one row per timestep.
  Ensures data integrity by flushing after every scenario.

REQUIREMENTS:
  User-specified:
  - Output to CSV.

  Implementation-discovered:
  - Scenarios finish out of order under the parallel runner; rows carry
    the scenario name and step index so the file can be re-sorted.
  - Observed flow is optional; empty cell when absent.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Mutex: the engine writes from several goroutines.

USAGE:
  w, err := output.NewCSVWriter("flows.csv")
  w.Write(result)
  w.Close()

MAINTENANCE:
  - Update Write() mapping when Result struct changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/gr-runner/internal/model"
)

// CSVHeader is the first row of every flow file.
var CSVHeader = []string{"run_id", "scenario", "model", "step", "flow", "observed"}

// CSVWriter handles writing flow series to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes every timestep of a result.
// It is thread-safe; rows of one result are never interleaved with another.
func (cw *CSVWriter) Write(r model.Result) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	for i, q := range r.Flow {
		observed := ""
		if i < len(r.Observed) {
			observed = formatFloat(r.Observed[i])
		}
		record := []string{
			r.RunID,
			r.Scenario,
			r.Model,
			strconv.Itoa(i),
			formatFloat(q),
			observed,
		}
		if err := cw.writer.Write(record); err != nil {
			return err
		}
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
