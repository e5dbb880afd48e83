package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plantpulse/downtimer/internal/report"
)

var cliRows = []string{
	"Date,Machine_ID,Assembly_Line_No,Hydraulic_Pressure(bar),Torque(Nm),Downtime",
	"2021-12-01,Makino-L1-Unit1-2013,Shopfloor-L1,71.04,24.05,Machine_Failure",
	"2021-12-02,Makino-L1-Unit1-2013,Shopfloor-L1,125.33,14.20,No_Machine_Failure",
	"2021-12-03,Makino-L2-Unit1-2015,Shopfloor-L2,96.72,25.92,Machine_Failure",
	"2021-12-04,Makino-L2-Unit1-2015,Shopfloor-L2,43.40,28.58,No_Machine_Failure",
	"2021-12-05,Makino-L3-Unit1-2015,Shopfloor-L3,97.96,27.40,Machine_Failure",
	"2021-12-06,Makino-L3-Unit1-2015,Shopfloor-L3,132.72,31.58,No_Machine_Failure",
}

func writeCLIFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "telemetry.csv")
	if err := os.WriteFile(path, []byte(strings.Join(cliRows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReportCommandEndToEnd(t *testing.T) {
	csvPath := writeCLIFixture(t)
	outDir := filepath.Join(t.TempDir(), "charts")

	rootCmd.SetArgs([]string{"report", csvPath, "-o", outDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("report: %v", err)
	}

	for _, name := range []string{"corr_heatmap.png", "downtime_by_line.png", "run.json"} {
		fi, err := os.Stat(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("artifact %s: %v", name, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("artifact %s is empty", name)
		}
	}

	m, err := report.LoadManifest(outDir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Rows != 6 {
		t.Fatalf("manifest rows = %d, want 6", m.Rows)
	}
	if len(m.Artifacts) < 2 {
		t.Fatalf("manifest artifacts = %v", m.Artifacts)
	}
	for _, a := range m.Artifacts {
		if _, err := os.Stat(a); err != nil {
			t.Fatalf("manifest lists missing artifact %s: %v", a, err)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	csvPath := writeCLIFixture(t)
	rootCmd.SetArgs([]string{"stats", csvPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("stats: %v", err)
	}
}

func TestCorrCommand(t *testing.T) {
	csvPath := writeCLIFixture(t)
	rootCmd.SetArgs([]string{"corr", csvPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("corr: %v", err)
	}
}

func TestReportCommandMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"report", filepath.Join(t.TempDir(), "nope.csv")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for missing input")
	}
}
