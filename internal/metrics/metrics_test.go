package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AnatoleLucet/awfy"
	"github.com/AnatoleLucet/awfy/internal/richards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("counts iterations by result", func(t *testing.T) {
		r := NewRecorder()

		r.Observe(awfy.Iteration{Benchmark: "Richards", Runtime: time.Millisecond})
		r.Observe(awfy.Iteration{Benchmark: "Richards", Runtime: 2 * time.Millisecond})
		r.Observe(awfy.Iteration{Benchmark: "DeltaBlue", Err: errors.New("bad")})

		path := filepath.Join(t.TempDir(), "awfy.prom")
		require.NoError(t, r.WriteFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out := string(data)

		assert.Contains(t, out, `awfy_iterations_total{benchmark="Richards",result="ok"} 2`)
		assert.Contains(t, out, `awfy_iterations_total{benchmark="DeltaBlue",result="error"} 1`)
		assert.Contains(t, out, `awfy_iteration_duration_seconds_count{benchmark="Richards"} 2`)
	})

	t.Run("keeps the last richards counters", func(t *testing.T) {
		r := NewRecorder()

		res, err := richards.NewScheduler().Run()
		require.NoError(t, err)
		r.ObserveRichards(res)

		families, err := r.Registry().Gather()
		require.NoError(t, err)

		values := map[string]float64{}
		for _, f := range families {
			if f.GetMetric()[0].GetGauge() != nil {
				values[f.GetName()] = f.GetMetric()[0].GetGauge().GetValue()
			}
		}

		assert.Equal(t, float64(richards.ExpectedQueuePacketCount), values["awfy_richards_queue_packets"])
		assert.Equal(t, float64(richards.ExpectedHoldCount), values["awfy_richards_hold_count"])
	})

	t.Run("recorders do not share state", func(t *testing.T) {
		a, b := NewRecorder(), NewRecorder()
		a.Observe(awfy.Iteration{Benchmark: "Richards"})

		families, err := b.Registry().Gather()
		require.NoError(t, err)
		for _, f := range families {
			assert.NotEqual(t, "awfy_iterations_total", f.GetName())
		}
	})
}
