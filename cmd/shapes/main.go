package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/shapes"
	"github.com/osuushi/shapes/render"
	"github.com/osuushi/shapes/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("shapes", "Build 2D shapes and query how they overlap.")
	verbose = app.Flag("verbose", "Log every query.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()

	renderCmd    = app.Command("render", "Draw a scene to a PNG, marking where edges cross.")
	renderScene  = renderCmd.Arg("scene", "YAML or SVG scene file.").Required().ExistingFile()
	renderOutput = renderCmd.Flag("output", "PNG to write.").Short('o').Default("shapes.png").String()
	renderShow   = renderCmd.Flag("show", "Also print the image to the terminal.").Bool()
	renderLabels = renderCmd.Flag("labels", "Write shape names on the image.").Bool()
	renderScale  = renderCmd.Flag("scale", "Pixels per unit.").Default("10").Float64()

	queryCmd   = app.Command("query", "Run a scene's queries and print the answers.")
	queryScene = queryCmd.Arg("scene", "YAML or SVG scene file.").Required().ExistingFile()
	queryDump  = queryCmd.Flag("dump", "Print full results instead of summaries.").Bool()
	queryJobs  = queryCmd.Flag("jobs", "Queries to run at once. 0 means one per CPU.").Short('j').Default("0").Int()

	containsCmd = app.Command("contains", "Test points against a polygon read from stdin.")
)

// The contains command reads newline separated points in the form "x y". The
// first block of points is the polygon, and every point after the first blank
// line is tested against it.
func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	logger := newLogger(*verbose)
	defer logger.Sync()
	au := aurora.NewAurora(!*noColor)

	var err error
	switch command {
	case renderCmd.FullCommand():
		err = runRender(logger)
	case queryCmd.FullCommand():
		err = runQuery(logger, au, os.Stdout)
	case containsCmd.FullCommand():
		err = runContains(au, os.Stdin, os.Stdout)
	}
	app.FatalIfError(err, "%s", command)
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	config.DisableCaller = true
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func runRender(logger *zap.Logger) error {
	s, err := scene.Load(*renderScene)
	if err != nil {
		return err
	}
	// Mark every crossing unless the scene asks for something narrower
	if len(s.Queries) == 0 {
		s.Queries = scene.PairwiseQueries(s, scene.OpPoints)
	}
	results, err := scene.Evaluator{Logger: logger}.Run(context.Background(), s)
	if err != nil {
		return err
	}

	items := make([]render.Item, len(s.Shapes))
	for i, named := range s.Shapes {
		items[i] = render.Item{Shape: named.Shape}
		if *renderLabels {
			items[i].Label = named.Name
		}
	}
	opts := render.DefaultOptions()
	opts.Scale = *renderScale
	opts.Labels = *renderLabels
	opts.Markers = scene.Markers(results)

	if err := render.SavePNG(*renderOutput, items, opts); err != nil {
		return err
	}
	logger.Info("rendered", zap.String("path", *renderOutput), zap.Int("markers", len(opts.Markers)))
	if *renderShow {
		return render.Show(os.Stdout, items, opts)
	}
	return nil
}

func runQuery(logger *zap.Logger, au aurora.Aurora, out io.Writer) error {
	s, err := scene.Load(*queryScene)
	if err != nil {
		return err
	}
	results, err := scene.Evaluator{Logger: logger, Concurrency: *queryJobs}.Run(context.Background(), s)
	if err != nil {
		return err
	}
	if *queryDump {
		_, err := pretty.Fprintf(out, "%# v\n", results)
		return err
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s: %s\n", r.Query, colorize(au, r))
	}
	return nil
}

func colorize(au aurora.Aurora, r scene.Result) aurora.Value {
	switch r.Query.Op {
	case scene.OpIntersects, scene.OpContains, scene.OpContainsPoint:
		if r.Bool {
			return au.Green(r.Summary())
		}
		return au.Red(r.Summary())
	}
	return au.Cyan(r.Summary())
}

func runContains(au aurora.Aurora, in io.Reader, out io.Writer) error {
	blocks, err := readBlocks(in)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return errors.New("no polygon on stdin")
	}
	polygon, err := shapes.NewPolygon(0, shapes.V(0, 0), blocks[0]...)
	if err != nil {
		return err
	}
	for _, points := range blocks[1:] {
		for _, p := range points {
			answer := au.Red("outside")
			if polygon.ContainsPoint(p) {
				answer = au.Green("inside")
			}
			fmt.Fprintf(out, "(%g, %g): %s\n", p.X, p.Y, answer)
		}
	}
	return nil
}

// Blocks of points separated by blank lines
func readBlocks(in io.Reader) ([][]shapes.Vector2, error) {
	blocks := [][]shapes.Vector2{}
	scanner := bufio.NewScanner(in)
	points := []shapes.Vector2{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the block
		if line == "" {
			if len(points) > 0 {
				blocks = append(blocks, points)
				points = []shapes.Vector2{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing block if any
	if len(points) > 0 {
		blocks = append(blocks, points)
	}
	return blocks, nil
}

func parsePoint(line string) (shapes.Vector2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return shapes.Vector2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return shapes.Vector2{}, errors.Errorf("invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return shapes.Vector2{}, errors.Errorf("invalid y value %q", parts[1])
	}
	return shapes.V(x, y), nil
}
