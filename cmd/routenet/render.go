package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/routenet/analysis"
	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/shortestpath"
)

const (
	recommendedMark = "<recommended>"

	// maxPrintedTable bounds the distance table printed in text mode.
	maxPrintedTable = 16
)

// formatCost prints a cost without float noise; unreachable is "∞".
func formatCost(v float64) string {
	if core.IsInf(v) {
		return "∞"
	}

	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

func formatErr(err error) string {
	if err == nil {
		return "ok"
	}

	return err.Error()
}

func mark(selected bool) string {
	if selected {
		return recommendedMark
	}

	return ""
}

func writeText(w io.Writer, name string, r *analysis.Report) error {
	h := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	var b strings.Builder

	kind := "undirected"
	if r.Directed {
		kind = "directed"
	}
	fmt.Fprintf(&b, "%s %s\n", h.Render("Report"), r.ID)
	fmt.Fprintf(&b, "Network: %s (%d airports, %s)\n", name, len(r.Labels), kind)
	fmt.Fprintf(&b, "Density: %.3f (%d of %d routes)\n", r.Density, r.EdgeCount, r.MaxEdges)

	if s := r.MST; s != nil {
		b.WriteString("\n" + h.Render("Minimum spanning tree") + "\n")
		t := table.New().Border(lipgloss.NormalBorder()).Headers("algorithm", "total", "elapsed", "result", "")
		for _, run := range s.Runs {
			total := "-"
			if run.Err == nil {
				total = formatCost(run.Total)
			}
			t.Row(string(run.Algorithm), total, run.Elapsed.String(), formatErr(run.Err), mark(run.Algorithm == s.Selected))
		}
		b.WriteString(t.Render() + "\n")
		if res := s.Result(); res != nil {
			parts := make([]string, len(res.Edges))
			for i, e := range res.Edges {
				parts[i] = r.Route(e) + " " + formatCost(e.Weight)
			}
			fmt.Fprintf(&b, "Tree (%s): %s\n", res.Algorithm, strings.Join(parts, ", "))
		}
	}

	if s := r.APSP; s != nil {
		b.WriteString("\n" + h.Render("All-pairs shortest paths") + "\n")
		t := table.New().Border(lipgloss.NormalBorder()).Headers("algorithm", "elapsed", "result", "")
		for _, run := range s.Runs {
			t.Row(string(run.Algorithm), run.Elapsed.String(), formatErr(run.Err), mark(run.Algorithm == s.Selected))
		}
		b.WriteString(t.Render() + "\n")
		if res := s.Result(); res != nil {
			if res.Table.N() > maxPrintedTable {
				fmt.Fprintf(&b, "Distance table omitted (%d airports); use --json.\n", res.Table.N())
			} else {
				fmt.Fprintf(&b, "Distances (%s):\n", res.Algorithm)
				b.WriteString(distanceTable(res.Table) + "\n")
			}
		}
	}

	if s := r.SSSP; s != nil {
		b.WriteString("\n" + h.Render("Single source") + "\n")
		fmt.Fprintf(&b, "From %s (%s, %s): %s\n", s.Source, s.Algorithm, s.Elapsed, formatErr(s.Err))
		if s.Err == nil {
			t := table.New().Border(lipgloss.NormalBorder()).Headers("to", "cost")
			for i, d := range s.Distances {
				t.Row(r.Labels[i], formatCost(d))
			}
			b.WriteString(t.Render() + "\n")
		}
	}

	if len(r.Notes) > 0 {
		b.WriteString("\n" + h.Render("Notes") + "\n")
		for _, n := range r.Notes {
			b.WriteString("  - " + n + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func distanceTable(d *shortestpath.DistanceTable) string {
	labels := d.Labels()
	t := table.New().Border(lipgloss.NormalBorder()).Headers(append([]string{""}, labels...)...)
	for i, row := range d.Rows() {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, labels[i])
		for _, v := range row {
			cells = append(cells, formatCost(v))
		}
		t.Row(cells...)
	}

	return t.Render()
}

// JSON view. Unreachable distances encode as null.

type jsonEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type jsonMSTRun struct {
	Algorithm string     `json:"algorithm"`
	Total     *float64   `json:"total,omitempty"`
	Edges     []jsonEdge `json:"edges,omitempty"`
	ElapsedNS int64      `json:"elapsed_ns"`
	Error     string     `json:"error,omitempty"`
}

type jsonMST struct {
	Recommended string       `json:"recommended"`
	Selected    string       `json:"selected,omitempty"`
	Forced      bool         `json:"forced"`
	Fallback    bool         `json:"fallback"`
	Runs        []jsonMSTRun `json:"runs"`
}

type jsonAPSPRun struct {
	Algorithm string       `json:"algorithm"`
	Distances [][]*float64 `json:"distances,omitempty"`
	ElapsedNS int64        `json:"elapsed_ns"`
	Error     string       `json:"error,omitempty"`
}

type jsonAPSP struct {
	Recommended string        `json:"recommended"`
	Selected    string        `json:"selected,omitempty"`
	Forced      bool          `json:"forced"`
	Fallback    bool          `json:"fallback"`
	Runs        []jsonAPSPRun `json:"runs"`
}

type jsonSSSP struct {
	Source    string     `json:"source"`
	Algorithm string     `json:"algorithm"`
	Distances []*float64 `json:"distances,omitempty"`
	ElapsedNS int64      `json:"elapsed_ns"`
	Error     string     `json:"error,omitempty"`
}

type jsonReport struct {
	ID        string    `json:"id"`
	Network   string    `json:"network"`
	Labels    []string  `json:"labels"`
	Directed  bool      `json:"directed"`
	EdgeCount int       `json:"edge_count"`
	MaxEdges  int       `json:"max_edges"`
	Density   float64   `json:"density"`
	MST       *jsonMST  `json:"mst,omitempty"`
	APSP      *jsonAPSP `json:"apsp,omitempty"`
	SSSP      *jsonSSSP `json:"sssp,omitempty"`
	Notes     []string  `json:"notes"`
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

func nullableRow(row []float64) []*float64 {
	out := make([]*float64, len(row))
	for i := range row {
		if !core.IsInf(row[i]) {
			v := row[i]
			out[i] = &v
		}
	}

	return out
}

func nanos(d time.Duration) int64 { return d.Nanoseconds() }

func toJSON(name string, r *analysis.Report) jsonReport {
	out := jsonReport{
		ID:        r.ID.String(),
		Network:   name,
		Labels:    r.Labels,
		Directed:  r.Directed,
		EdgeCount: r.EdgeCount,
		MaxEdges:  r.MaxEdges,
		Density:   r.Density,
		Notes:     r.Notes,
	}

	if s := r.MST; s != nil {
		m := &jsonMST{
			Recommended: string(s.Recommended),
			Selected:    string(s.Selected),
			Forced:      s.Forced,
			Fallback:    s.Fallback,
		}
		for _, run := range s.Runs {
			jr := jsonMSTRun{Algorithm: string(run.Algorithm), ElapsedNS: nanos(run.Elapsed), Error: errString(run.Err)}
			if run.Err == nil {
				total := run.Total
				jr.Total = &total
				for _, e := range run.Edges {
					jr.Edges = append(jr.Edges, jsonEdge{From: r.Labels[e.From], To: r.Labels[e.To], Weight: e.Weight})
				}
			}
			m.Runs = append(m.Runs, jr)
		}
		out.MST = m
	}

	if s := r.APSP; s != nil {
		a := &jsonAPSP{
			Recommended: string(s.Recommended),
			Selected:    string(s.Selected),
			Forced:      s.Forced,
			Fallback:    s.Fallback,
		}
		for _, run := range s.Runs {
			jr := jsonAPSPRun{Algorithm: string(run.Algorithm), ElapsedNS: nanos(run.Elapsed), Error: errString(run.Err)}
			if run.Err == nil {
				for _, row := range run.Table.Rows() {
					jr.Distances = append(jr.Distances, nullableRow(row))
				}
			}
			a.Runs = append(a.Runs, jr)
		}
		out.APSP = a
	}

	if s := r.SSSP; s != nil {
		out.SSSP = &jsonSSSP{
			Source:    s.Source,
			Algorithm: s.Algorithm,
			ElapsedNS: nanos(s.Elapsed),
			Error:     errString(s.Err),
		}
		if s.Err == nil {
			out.SSSP.Distances = nullableRow(s.Distances)
		}
	}

	return out
}

func writeJSON(w io.Writer, name string, r *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(toJSON(name, r))
}
