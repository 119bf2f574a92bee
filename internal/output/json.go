/*
PURPOSE:
  Writes scenario summaries to a JSON Lines file (NDJSON).

REQUIREMENTS:
  Implementation-discovered:
  - JSON Lines is append-friendly; one scenario per line.
  - Failed scenarios are recorded too, with their error string.
  - A missing rainfall value propagates NaN into the flow, and JSON has no
    NaN. Non-finite numbers are written as null instead of failing the record.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("flows.jsonl")
  w.Write(result)
  w.Close()
*/

package output

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/gr-runner/internal/model"
)

// JSONWriter handles writing scenario summaries to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
	// KeepFlow retains the flow series in each record.
	KeepFlow bool
}

// number encodes non-finite values as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// record shadows the float fields of model.Result that may be non-finite.
type record struct {
	model.Result
	Parameters  map[string]number `json:"parameters"`
	FinalStates map[string]number `json:"final_states,omitempty"`
	Flow        []number          `json:"flow,omitempty"`
	TotalFlow   number            `json:"total_flow"`
	PeakFlow    number            `json:"peak_flow"`
}

func newRecord(r model.Result, keepFlow bool) record {
	rec := record{
		Result:     r,
		Parameters: numbers(r.Parameters),
		TotalFlow:  number(r.TotalFlow),
		PeakFlow:   number(r.PeakFlow),
	}
	if len(r.FinalStates) > 0 {
		rec.FinalStates = numbers(r.FinalStates)
	}
	if keepFlow && len(r.Flow) > 0 {
		rec.Flow = make([]number, len(r.Flow))
		for i, q := range r.Flow {
			rec.Flow[i] = number(q)
		}
	}
	return rec
}

func numbers(m map[string]float64) map[string]number {
	if m == nil {
		return nil
	}
	out := make(map[string]number, len(m))
	for k, v := range m {
		out[k] = number(v)
	}
	return out
}

// NewJSONWriter creates a new JSONWriter.
// It overwrites the file if it exists.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single result as a JSON line.
func (jw *JSONWriter) Write(r model.Result) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(newRecord(r, jw.KeepFlow))
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
