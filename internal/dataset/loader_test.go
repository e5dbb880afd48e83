package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var telemetryRows = []string{
	"Date,Machine_ID,Assembly_Line_No,Hydraulic_Pressure(bar),Torque(Nm),Downtime",
	"2021-12-01,Makino-L1-Unit1-2013,Shopfloor-L1,71.04,24.05,Machine_Failure",
	"2021-12-02,Makino-L1-Unit1-2013,Shopfloor-L1,125.33,14.20,No_Machine_Failure",
	"2021-12-03,Makino-L3-Unit1-2015,Shopfloor-L3,,25.92,Machine_Failure",
	"2021-12-04,Makino-L2-Unit1-2015,Shopfloor-L2,71.12,30.00,No_Machine_Failure",
}

func writeFixture(t *testing.T, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadInfersColumnKinds(t *testing.T) {
	tbl, err := Load(writeFixture(t, "telemetry.csv", telemetryRows), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 4 {
		t.Fatalf("rows = %d, want 4", tbl.Len())
	}
	want := map[string]Kind{
		"Date":                    KindDate,
		"Machine_ID":              KindLabel,
		"Assembly_Line_No":        KindLabel,
		"Hydraulic_Pressure(bar)": KindNumeric,
		"Torque(Nm)":              KindNumeric,
		"Downtime":                KindLabel,
	}
	for name, kind := range want {
		c, err := tbl.Column(name)
		if err != nil {
			t.Fatalf("Column(%q): %v", name, err)
		}
		if c.Kind != kind {
			t.Fatalf("%s kind = %s, want %s", name, c.Kind, kind)
		}
	}
	if got := tbl.NumericColumns(); len(got) != 2 || got[0] != "Hydraulic_Pressure(bar)" || got[1] != "Torque(Nm)" {
		t.Fatalf("numeric columns = %v", got)
	}
}

func TestLoadTracksNulls(t *testing.T) {
	tbl, err := Load(writeFixture(t, "telemetry.csv", telemetryRows), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	vals, valid, err := tbl.Numeric("Hydraulic_Pressure(bar)")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	if valid[2] {
		t.Fatalf("row 3 pressure should be null")
	}
	if !valid[0] || vals[0] != 71.04 {
		t.Fatalf("row 1 pressure = %v (valid %v)", vals[0], valid[0])
	}
}

func TestLoadFieldCountMismatch(t *testing.T) {
	rows := append(append([]string{}, telemetryRows...), "2021-12-05,too,short")
	_, err := Load(writeFixture(t, "bad.csv", rows), Options{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Row != 5 {
		t.Fatalf("failing row = %d, want 5", pe.Row)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestLoadSniffsTSV(t *testing.T) {
	rows := []string{
		strings.Join([]string{"Assembly_Line_No", "Torque(Nm)"}, "\t"),
		strings.Join([]string{"Shopfloor-L1", "24.05"}, "\t"),
		strings.Join([]string{"Shopfloor-L2", "14.20"}, "\t"),
	}
	tbl, err := Load(writeFixture(t, "telemetry.tsv", rows), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Len())
	}
	if _, _, err := tbl.Numeric("Torque(Nm)"); err != nil {
		t.Fatalf("Numeric: %v", err)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	tbl, err := Load(writeFixture(t, "empty.csv", telemetryRows[:1]), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("rows = %d, want 0", tbl.Len())
	}
}

func TestColumnNotFound(t *testing.T) {
	tbl, err := Load(writeFixture(t, "telemetry.csv", telemetryRows), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = tbl.Column("Spindle_Speed(RPM)")
	var nf *ColumnNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *ColumnNotFoundError", err)
	}
	if nf.Column != "Spindle_Speed(RPM)" {
		t.Fatalf("column = %q", nf.Column)
	}
}

func TestCellFormatting(t *testing.T) {
	tbl, err := Load(writeFixture(t, "telemetry.csv", telemetryRows), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	date, _ := tbl.Column("Date")
	if got := date.Cell(0); got != "2021-12-01" {
		t.Fatalf("date cell = %q", got)
	}
	torque, _ := tbl.Column("Torque(Nm)")
	if got := torque.Cell(1); got != "14.2" {
		t.Fatalf("torque cell = %q", got)
	}
	pressure, _ := tbl.Column("Hydraulic_Pressure(bar)")
	if got := pressure.Cell(2); got != "" {
		t.Fatalf("null cell = %q, want empty", got)
	}
	line, _ := tbl.Column("Assembly_Line_No")
	if got := line.Cell(3); got != "Shopfloor-L2" {
		t.Fatalf("label cell = %q", got)
	}
}
