package dataset

import (
	"strconv"
	"time"
)

// Kind classifies a column by the predominant type of its parsed values.
type Kind int

const (
	KindLabel Kind = iota
	KindNumeric
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindDate:
		return "date"
	default:
		return "label"
	}
}

// Column is one typed column of a Table. Exactly one of the value slices is
// populated, matching Kind; Valid marks non-null cells. Values at invalid
// indexes are zero and must not be read.
type Column struct {
	Name  string
	Kind  Kind
	Nums  []float64
	Times []time.Time
	Strs  []string
	Valid []bool
}

// IsValid reports whether the cell at row i holds a value.
func (c *Column) IsValid(i int) bool { return c.Valid[i] }

// Cell formats the value at row i for use as a group key or display string.
// Invalid cells format as the empty string.
func (c *Column) Cell(i int) string {
	if !c.Valid[i] {
		return ""
	}
	switch c.Kind {
	case KindNumeric:
		return strconv.FormatFloat(c.Nums[i], 'g', -1, 64)
	case KindDate:
		return c.Times[i].Format("2006-01-02")
	default:
		return c.Strs[i]
	}
}

// Table is an immutable, column-major view of one delimited file. It is
// constructed once by Load and read-only afterwards.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

func newTable(cols []Column, rows int) *Table {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c.Name] = i
	}
	return &Table{cols: cols, index: index, rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// ColumnNames returns the schema in file order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	return &t.cols[i], nil
}

// Numeric returns the values and validity mask of a numeric column.
func (t *Table) Numeric(name string) ([]float64, []bool, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, nil, err
	}
	if c.Kind != KindNumeric {
		return nil, nil, &UndefinedError{Op: "numeric access to " + name, Reason: "column is " + c.Kind.String()}
	}
	return c.Nums, c.Valid, nil
}

// Dates returns the values and validity mask of a date column.
func (t *Table) Dates(name string) ([]time.Time, []bool, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, nil, err
	}
	if c.Kind != KindDate {
		return nil, nil, &UndefinedError{Op: "date access to " + name, Reason: "column is " + c.Kind.String()}
	}
	return c.Times, c.Valid, nil
}

// Labels returns the values and validity mask of a label column.
func (t *Table) Labels(name string) ([]string, []bool, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, nil, err
	}
	if c.Kind != KindLabel {
		return nil, nil, &UndefinedError{Op: "label access to " + name, Reason: "column is " + c.Kind.String()}
	}
	return c.Strs, c.Valid, nil
}

// NumericColumns returns the names of all numeric columns in file order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, c := range t.cols {
		if c.Kind == KindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}
