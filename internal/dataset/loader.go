package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Options controls how a delimited file is read.
type Options struct {
	// Delimiter for the file. If 0, sniffed from the extension
	// (".tsv" means tab, anything else comma).
	Delimiter rune
}

// Load reads a delimited file with a header row into a Table. Every data row
// must have exactly the header's field count. A file with a header but zero
// data rows loads successfully; downstream aggregations report the emptiness.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	delim := opts.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}

	r := csv.NewReader(f)
	r.Comma = delim
	r.ReuseRecord = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // length checked below for a row-numbered error

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("missing header row")}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	ncol := len(header)
	names := make([]string, ncol)
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	var raw [][]string
	for row := 1; ; row++ {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Path: path, Row: row, Err: err}
		}
		if len(rec) != ncol {
			return nil, &ParseError{Path: path, Row: row, Err: fmt.Errorf("expected %d fields, got %d", ncol, len(rec))}
		}
		cp := make([]string, ncol)
		copy(cp, rec)
		raw = append(raw, cp)
	}

	cols := make([]Column, ncol)
	for j := 0; j < ncol; j++ {
		cols[j] = buildColumn(names[j], raw, j)
	}
	return newTable(cols, len(raw)), nil
}

// buildColumn infers the column kind from the predominant parsed type of its
// non-empty values (ties prefer numeric, then date), then fills the typed
// slice with a validity mask. Empty cells and values that fail the column's
// parser are nulls.
func buildColumn(name string, raw [][]string, j int) Column {
	var numCnt, dtCnt, txtCnt int
	for _, rec := range raw {
		v := strings.TrimSpace(rec[j])
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			numCnt++
			continue
		}
		if _, ok := parseDate(v); ok {
			dtCnt++
			continue
		}
		txtCnt++
	}

	kind := KindLabel
	if numCnt > 0 && numCnt >= dtCnt && numCnt >= txtCnt {
		kind = KindNumeric
	} else if dtCnt > 0 && dtCnt >= txtCnt {
		kind = KindDate
	}

	c := Column{Name: name, Kind: kind, Valid: make([]bool, len(raw))}
	switch kind {
	case KindNumeric:
		c.Nums = make([]float64, len(raw))
		for i, rec := range raw {
			v := strings.TrimSpace(rec[j])
			if v == "" {
				continue
			}
			if x, err := strconv.ParseFloat(v, 64); err == nil {
				c.Nums[i] = x
				c.Valid[i] = true
			}
		}
	case KindDate:
		c.Times = make([]time.Time, len(raw))
		for i, rec := range raw {
			v := strings.TrimSpace(rec[j])
			if v == "" {
				continue
			}
			if ts, ok := parseDate(v); ok {
				c.Times[i] = ts
				c.Valid[i] = true
			}
		}
	default:
		c.Strs = make([]string, len(raw))
		for i, rec := range raw {
			v := strings.TrimSpace(rec[j])
			if v == "" {
				continue
			}
			c.Strs[i] = v
			c.Valid[i] = true
		}
	}
	return c
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02-01-2006", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
