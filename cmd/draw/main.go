package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/midbel/svg"
	"golang.org/x/sync/errgroup"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/config"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/render"
)

func main() {
	var (
		file    = flag.String("config", "", "chart configuration file")
		kind    = flag.String("type", "", "chart type")
		title   = flag.String("title", "", "chart title")
		width   = flag.Float64("width", 0, "chart width")
		height  = flag.Float64("height", 0, "chart height")
		bins    = flag.Int("bins", 0, "number of bins of histogram")
		method  = flag.String("method", "", "binning method (sturges, sqrt, fd)")
		thresh  = flag.Int("threshold", 0, "maximum number of points of line")
		curve   = flag.String("curve", "", "interpolation of line (linear, step, step-before, step-after)")
		marker  = flag.String("marker", "", "marker of line points (circle, square, diamond)")
		hash    = flag.Bool("hash", false, "assign colors by hashing series id")
		hide    = flag.String("hide", "", "comma separated list of series to hide")
		col     = flag.Int("col", 0, "index of value column for histogram and density")
		jobs    = flag.Int("jobs", 4, "number of charts rendered in parallel")
		outdir  = flag.String("out", "", "output directory")
		verbose = flag.Bool("v", false, "verbose")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*file)
	if err != nil {
		slog.Error("fail to load configuration", "err", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Type = *kind
		case "title":
			cfg.Title = *title
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "bins":
			cfg.Bins = *bins
		case "method":
			cfg.Method = *method
		case "threshold":
			cfg.Threshold = *thresh
		case "curve":
			cfg.Curve = *curve
		case "marker":
			cfg.Marker = *marker
		case "hash":
			cfg.Hash = *hash
		case "hide":
			cfg.Hidden = strings.Split(*hide, ",")
		}
	})
	set, err := cfg.Resolve()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		slog.Error("no input files given")
		os.Exit(1)
	}
	if err := drawAll(context.Background(), set, flag.Args(), *outdir, *col, *jobs, os.Stdout); err != nil {
		slog.Error("fail to draw charts", "err", err)
		os.Exit(2)
	}
}

func loadConfig(file string) (config.Chart, error) {
	var (
		cfg config.Chart
		err error
	)
	if file != "" {
		if cfg, err = config.Load(file); err != nil {
			return cfg, err
		}
	}
	return cfg, config.FromEnv(&cfg)
}

// drawAll draws every file concurrently. Charts are written to stdout when
// outdir is empty; each chart is then written in a single call so that
// documents never interleave.
func drawAll(ctx context.Context, set config.Settings, files []string, outdir string, col, jobs int, stdout io.Writer) error {
	var (
		grp, sub = errgroup.WithContext(ctx)
		out      = &lockedWriter{w: stdout}
	)
	if jobs > 0 {
		grp.SetLimit(jobs)
	}
	for _, f := range files {
		f := f
		grp.Go(func() error {
			if err := sub.Err(); err != nil {
				return err
			}
			return drawFile(set, f, outdir, col, out)
		})
	}
	return grp.Wait()
}

func drawFile(set config.Settings, file, outdir string, col int, stdout io.Writer) error {
	rows, err := readRows(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	ch := render.NewChart(set.Title, set.Dimension)
	if ch.Title == "" {
		ch.Title = getIdent(file)
	}
	el, err := build(&ch, set, rows, col)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	var buf bytes.Buffer
	if err := ch.Render(&buf, el); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	buf.WriteByte('\n')
	slog.Debug("chart drawn", "file", file, "type", set.Kind, "rows", len(rows))

	if outdir == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(filepath.Join(outdir, getIdent(file)+".svg"), buf.Bytes(), 0o644)
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(b)
}

func build(ch *render.Chart, set config.Settings, rows [][]string, col int) (svg.Element, error) {
	var (
		dim  = set.Dimension
		opts = set.Layout
	)
	switch set.Kind {
	case config.Bar:
		series, err := readSeries(rows)
		if err != nil {
			return nil, err
		}
		res := layout.Layout(series, dim, opts)
		ch.Bottom = render.CategoryAxis{Orientation: render.OrientBottom, Scaler: res.X}
		ch.Left = numberAxis(res.Y, res.Ticks, render.OrientLeft)
		return render.Bars(res), nil
	case config.Marimekko:
		series, err := readSeries(rows)
		if err != nil {
			return nil, err
		}
		return render.Mekko(layout.Marimekko(series, dim, opts)), nil
	case config.Histogram:
		values, err := readValues(rows, col)
		if err != nil {
			return nil, err
		}
		res := layout.Histogram(values, dim, opts)
		ch.Bottom = numberAxis(res.X, res.XTicks, render.OrientBottom)
		ch.Left = numberAxis(res.Y, res.YTicks, render.OrientLeft)
		return render.Histogram(res, opts.Colors.Assign(0, "")), nil
	case config.Density:
		values, err := readValues(rows, col)
		if err != nil {
			return nil, err
		}
		res := layout.Density(values, dim, opts)
		ch.Bottom = numberAxis(res.X, res.X.Ticks(opts.Ticks), render.OrientBottom)
		return render.Density(res, opts.Colors.Assign(0, "")), nil
	case config.Violin:
		groups, err := readGroups(rows)
		if err != nil {
			return nil, err
		}
		res := layout.Violin(groups, dim, opts)
		ch.Bottom = render.CategoryAxis{Orientation: render.OrientBottom, Scaler: res.X}
		ch.Left = numberAxis(res.Y, res.Ticks, render.OrientLeft)
		return render.Violins(res), nil
	case config.Line:
		points, err := readPoints(rows)
		if err != nil {
			return nil, err
		}
		res := layout.LineChart(points, dim, opts)
		ch.Bottom = numberAxis(res.X, res.XTicks, render.OrientBottom)
		ch.Left = numberAxis(res.Y, res.YTicks, render.OrientLeft)
		return render.Line(res, set.Line), nil
	default:
		return nil, fmt.Errorf("%s: %w", set.Kind, config.ErrUnknownType)
	}
}

func numberAxis(scale charts.LinearScale, ticks []float64, orient render.Orientation) render.Axis {
	return render.NumberAxis{
		Orientation:    orient,
		Scaler:         scale,
		Ticks:          ticks,
		WithOuterTicks: true,
	}
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

// readRows reads a csv file and skips its header.
func readRows(file string) ([][]string, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs   = csv.NewReader(r)
		rows [][]string
	)
	rs.FieldsPerRecord = -1
	if _, err := rs.Read(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readSeries expects rows of category, series, value and an optional color.
func readSeries(rows [][]string) ([]layout.Series, error) {
	var (
		list  []layout.Series
		index = make(map[string]int)
	)
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("line %d: expected category, series and value", i+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		d := layout.Datum{
			Category: row[0],
			Value:    v,
		}
		if len(row) > 3 {
			d.Color = row[3]
		}
		x, ok := index[row[1]]
		if !ok {
			x = len(list)
			index[row[1]] = x
			list = append(list, layout.Series{
				ID:   row[1],
				Name: row[1],
			})
		}
		list[x].Data = append(list[x].Data, d)
	}
	return list, nil
}

func readValues(rows [][]string, col int) ([]float64, error) {
	list := make([]float64, 0, len(rows))
	for i, row := range rows {
		if col < 0 || col >= len(row) {
			return nil, fmt.Errorf("line %d: column %d out of range", i+2, col)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		list = append(list, v)
	}
	return list, nil
}

// readGroups expects rows of group, value.
func readGroups(rows [][]string) ([]layout.ViolinGroup, error) {
	var (
		list  []layout.ViolinGroup
		index = make(map[string]int)
	)
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: expected group and value", i+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		x, ok := index[row[0]]
		if !ok {
			x = len(list)
			index[row[0]] = x
			list = append(list, layout.ViolinGroup{Name: row[0]})
		}
		list[x].Values = append(list[x].Values, v)
	}
	return list, nil
}

// readPoints expects rows of x, y.
func readPoints(rows [][]string) ([]layout.XY, error) {
	list := make([]layout.XY, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: expected x and y", i+2)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		list = append(list, charts.NumberPoint(x, y))
	}
	return list, nil
}
