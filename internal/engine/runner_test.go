package engine

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/gr-runner/internal/config"
	"github.com/daryltucker/gr-runner/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	rain, evap := climate(60)

	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Workers = 2
	cfg.Scenarios = []config.Scenario{
		{
			Name:               "daily",
			Model:              "gr4j",
			Parameters:         gr4jParams,
			Rainfall:           rain,
			Evapotranspiration: evap,
		},
		{
			Name:               "monthly",
			Model:              "GR2M",
			Parameters:         map[string]float64{"X1": 265.072, "X2": 1.040},
			States:             map[string]float64{"production_store": 0.4},
			Rainfall:           []float64{80, 20, 140, 5},
			Evapotranspiration: []float64{30, 60, 20, 90},
			Observed:           []float64{10, 8, 30, 12},
		},
		{
			Name:               "broken",
			Model:              "GR4J",
			Parameters:         gr4jParams,
			Rainfall:           rain,
			Evapotranspiration: evap[:10],
		},
	}
	return cfg
}

func TestSimulate(t *testing.T) {
	cfg := testConfig(t)
	e := New(cfg)
	require.NotEmpty(t, e.RunID)

	res := e.Simulate(cfg.Scenarios[0])
	require.Empty(t, res.Error)
	assert.Equal(t, e.RunID, res.RunID)
	assert.Equal(t, "GR4J", res.Model)
	assert.Equal(t, model.Daily, res.Timestep)
	assert.Equal(t, 60, res.Steps)
	require.Len(t, res.Flow, 60)

	var total, peak float64
	for _, q := range res.Flow {
		total += q
		peak = max(peak, q)
	}
	assert.InDelta(t, total, res.TotalFlow, 1e-9)
	assert.Equal(t, peak, res.PeakFlow)
	assert.Contains(t, res.FinalStates, "routing_store")
	assert.Nil(t, res.Scores, "no observations, no scores")
}

func TestSimulateScores(t *testing.T) {
	cfg := testConfig(t)
	res := New(cfg).Simulate(cfg.Scenarios[1])
	require.Empty(t, res.Error)

	assert.Equal(t, model.Monthly, res.Timestep)
	for _, k := range []string{"rmse", "nse", "kge", "pbias"} {
		assert.Contains(t, res.Scores, k)
	}
}

func TestSimulateFailure(t *testing.T) {
	cfg := testConfig(t)
	res := New(cfg).Simulate(cfg.Scenarios[2])
	assert.Contains(t, res.Error, model.ErrLengthMismatch.Error())
	assert.Nil(t, res.Flow)
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Configuration order, not completion order
	assert.Equal(t, "daily", results[0].Scenario)
	assert.Equal(t, "monthly", results[1].Scenario)
	assert.Equal(t, "broken", results[2].Scenario)
	assert.NotEmpty(t, results[2].Error)
	assert.Equal(t, results[0].RunID, results[1].RunID)

	f, err := os.Open(filepath.Join(cfg.OutputDir, "flows.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+60+4, "header plus one row per step of successful scenarios")

	jf, err := os.Open(filepath.Join(cfg.OutputDir, "flows.jsonl"))
	require.NoError(t, err)
	defer jf.Close()

	var records int
	sc := bufio.NewScanner(jf)
	for sc.Scan() {
		var r model.Result
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		assert.Nil(t, r.Flow, "flow omitted unless keep_flow is set")
		records++
	}
	assert.Equal(t, 3, records)
}

func TestRunFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Only = []string{"monthly"}

	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "GR2M", results[0].Model)

	cfg.Exclude = []string{"MONTH"}
	results, err = Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workers = 0

	_, err := Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cfg)
	assert.True(t, errors.Is(err, context.Canceled))
}
