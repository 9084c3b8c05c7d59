package scene

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/osuushi/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEvaluator_Run(t *testing.T) {
	s := parse(t, plusScene)
	core, logs := observer.New(zapcore.DebugLevel)

	results, err := Evaluator{Logger: zap.New(core), Concurrency: 2}.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, len(s.Queries))
	for i, result := range results {
		assert.Equal(t, s.Queries[i], result.Query)
	}

	// A plus sign has no corner inside the other bar
	assert.False(t, results[0].Bool)
	assert.Equal(t, "horizontal intersects vertical: false", results[0].String())

	want := []shapes.Vector2{shapes.V(6, 4), shapes.V(4, 4), shapes.V(6, 6), shapes.V(4, 6)}
	require.Len(t, results[1].Points, len(want))
	for i, p := range results[1].Points {
		assert.InDelta(t, want[i].X, p.X, 1e-9)
		assert.InDelta(t, want[i].Y, p.Y, 1e-9)
	}
	assert.True(t, results[1].Found)
	assert.Equal(t, "4 points", results[1].Summary())

	require.True(t, results[2].Found)
	require.Len(t, results[2].Points, 1)
	assert.InDelta(t, 6, results[2].Points[0].X, 1e-9)
	assert.InDelta(t, 4, results[2].Points[0].Y, 1e-9)
	assert.Equal(t, "(6, 4)", results[2].Summary())

	assert.True(t, results[3].Bool)

	assert.Equal(t, shapes.Left, results[4].Horizontal)
	assert.Equal(t, shapes.Above, results[4].Vertical)
	assert.Equal(t, "Left, Above", results[4].Summary())

	assert.False(t, results[5].Bool)

	assert.Equal(t, len(s.Queries), logs.FilterMessage("query").Len())
	summary := logs.FilterMessage("scene evaluated").All()
	require.Len(t, summary, 1)
	assert.Equal(t, zapcore.InfoLevel, summary[0].Level)
	assert.EqualValues(t, 6, summary[0].ContextMap()["queries"])
	assert.Len(t, Markers(results), 5)
}

func TestEvaluator_DefaultsToPairwiseIntersects(t *testing.T) {
	s := parse(t, `
shapes:
  - {name: big, box: {center: [5, 5], size: [10, 10]}}
  - {name: small, box: {center: [5, 5], size: [2, 2]}}
  - {name: far, box: {center: [50, 50], size: [2, 2]}}
`)
	results, err := Evaluator{}.Run(context.Background(), s)
	require.NoError(t, err)

	var lines []string
	for _, r := range results {
		lines = append(lines, r.String())
	}
	assert.Equal(t, []string{
		"big intersects small: true",
		"big intersects far: false",
		"small intersects big: false",
		"small intersects far: false",
		"far intersects big: false",
		"far intersects small: false",
	}, lines)
}

func TestEvaluator_KeepsQueryOrder(t *testing.T) {
	var doc strings.Builder
	doc.WriteString("shapes:\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&doc, "  - {name: s%d, box: {center: [%d, 0], size: [3, 3]}}\n", i, i*2)
	}
	s := parse(t, doc.String())
	s.Queries = PairwiseQueries(s, OpPoints)

	results, err := Evaluator{Concurrency: 3}.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 90)
	for i, r := range results {
		assert.Equal(t, s.Queries[i].A.Name, r.Query.A.Name)
		assert.Equal(t, s.Queries[i].B.Name, r.Query.B.Name)
	}
}

func TestEvaluator_Cancelled(t *testing.T) {
	s := parse(t, plusScene)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluator{}.Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}
