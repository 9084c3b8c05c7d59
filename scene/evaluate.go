package scene

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/osuushi/shapes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runs a scene's queries. Shapes are immutable once built, so queries are
// answered concurrently against shared shapes.
type Evaluator struct {
	// nil logs nothing
	Logger *zap.Logger
	// Most queries in flight at once. Zero or less means GOMAXPROCS.
	Concurrency int
}

type Result struct {
	Query Query
	// Answer to intersects, contains and contains-point
	Bool bool
	// Answer to points, and to first when Found
	Points []shapes.Vector2
	Found  bool
	// Answer to direction
	Horizontal shapes.XDirection
	Vertical   shapes.YDirection
}

func (r Result) Summary() string {
	switch r.Query.Op {
	case OpPoints:
		return fmt.Sprintf("%d points", len(r.Points))
	case OpFirst:
		if !r.Found {
			return "none"
		}
		p := r.Points[0]
		return fmt.Sprintf("(%g, %g)", p.X, p.Y)
	case OpDirection:
		return fmt.Sprintf("%s, %s", r.Horizontal, r.Vertical)
	}
	return fmt.Sprint(r.Bool)
}

func (r Result) String() string {
	return r.Query.String() + ": " + r.Summary()
}

// Run answers every query in the scene, or every ordered pair's intersects
// query when the scene has none. Results are in query order.
func (e Evaluator) Run(ctx context.Context, s *Scene) ([]Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	queries := s.Queries
	if len(queries) == 0 {
		queries = PairwiseQueries(s, OpIntersects)
	}
	limit := e.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	started := time.Now()
	results := make([]Result, len(queries))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	for i, query := range queries {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = answer(query)
			logger.Debug("query",
				zap.Int("index", i),
				zap.String("op", string(query.Op)),
				zap.String("a", query.A.Name),
				zap.String("b", query.B.Name),
				zap.String("result", results[i].Summary()),
			)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Info("scene evaluated",
		zap.Int("shapes", len(s.Shapes)),
		zap.Int("queries", len(queries)),
		zap.Int("concurrency", limit),
		zap.Duration("elapsed", time.Since(started)),
	)
	return results, nil
}

func answer(q Query) Result {
	result := Result{Query: q}
	a, b := q.A.Shape, q.B.Shape
	switch q.Op {
	case OpIntersects:
		result.Bool = a.Intersects(b)
	case OpContains:
		result.Bool = a.ContainsShape(b)
	case OpContainsPoint:
		result.Bool = a.ContainsPoint(q.Point)
	case OpPoints:
		result.Points = slices.Collect(a.IntersectionPoints(b))
		result.Found = len(result.Points) > 0
	case OpFirst:
		if point, ok := a.FirstIntersectionPoint(b, nil); ok {
			result.Points = []shapes.Vector2{point}
			result.Found = true
		}
	case OpDirection:
		result.Horizontal = a.RelativeHorizontalDirection(b)
		result.Vertical = a.RelativeVerticalDirection(b)
	}
	return result
}

// Every intersection point found by the results, for marking in a render
func Markers(results []Result) []shapes.Vector2 {
	var markers []shapes.Vector2
	for _, r := range results {
		markers = append(markers, r.Points...)
	}
	return markers
}
