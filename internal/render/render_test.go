package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plantpulse/downtimer/internal/analysis"
	"github.com/plantpulse/downtimer/internal/dataset"
)

var chartRows = []string{
	"Date,Assembly_Line_No,Hydraulic_Pressure(bar),Torque(Nm),Spindle_Speed(RPM)",
	"2021-12-01,Shopfloor-L1,71.04,24.05,25892",
	"2021-12-02,Shopfloor-L1,125.33,14.20,19856",
	"2021-12-03,Shopfloor-L2,96.72,25.92,19851",
	"2021-12-04,Shopfloor-L2,43.40,28.58,",
	"2021-12-05,Shopfloor-L3,97.96,27.40,18461",
}

func loadChartFixture(t *testing.T) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts.csv")
	if err := os.WriteFile(path, []byte(strings.Join(chartRows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err := dataset.Load(path, dataset.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tbl
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if fi.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestHeatmapWritesPNG(t *testing.T) {
	tbl := loadChartFixture(t)
	m, err := analysis.Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	out := filepath.Join(t.TempDir(), "corr_heatmap.png")
	if err := Heatmap(m, out); err != nil {
		t.Fatalf("Heatmap: %v", err)
	}
	assertPNG(t, out)
}

func TestScatterWritesPNG(t *testing.T) {
	tbl := loadChartFixture(t)
	out := filepath.Join(t.TempDir(), "scatter.png")
	if err := Scatter(tbl, "Hydraulic_Pressure(bar)", "Torque(Nm)", out); err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	assertPNG(t, out)
}

func TestScatterUnknownColumn(t *testing.T) {
	tbl := loadChartFixture(t)
	out := filepath.Join(t.TempDir(), "scatter.png")
	if err := Scatter(tbl, "Nope", "Torque(Nm)", out); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestCountBarsWritesPNG(t *testing.T) {
	counts := map[string]int{"Shopfloor-L1": 7, "Shopfloor-L2": 3, "Shopfloor-L3": 7}
	out := filepath.Join(t.TempDir(), "downtime.png")
	if err := CountBars(counts, "Downtime by Assembly_Line_No", out); err != nil {
		t.Fatalf("CountBars: %v", err)
	}
	assertPNG(t, out)
}

func TestHeatmapBadPath(t *testing.T) {
	tbl := loadChartFixture(t)
	m, err := analysis.Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	out := filepath.Join(t.TempDir(), "missing-dir", "corr.png")
	if err := Heatmap(m, out); err == nil {
		t.Fatalf("expected write error for missing directory")
	}
}
