package checkpoint

import (
	"fmt"
	"strconv"
)

// unavailableMarker is the literal written for packages the statistics API
// reported as missing.
const unavailableMarker = "NA"

type downloadState uint8

const (
	stateUnresolved downloadState = iota
	stateUnavailable
	stateResolved
)

// Downloads is the three-state download cell of a checkpoint record:
// unresolved (zero value), unavailable, or a resolved non-negative count.
type Downloads struct {
	value int
	state downloadState
}

// Resolved returns a Downloads holding the given count.
func Resolved(n int) Downloads { return Downloads{value: n, state: stateResolved} }

// Unavailable returns the Downloads marker for a package the statistics API
// doesn't know about.
func Unavailable() Downloads { return Downloads{state: stateUnavailable} }

// IsUnresolved reports whether the cell has never been attempted.
func (d Downloads) IsUnresolved() bool { return d.state == stateUnresolved }

// IsUnavailable reports whether the statistics API reported the package missing.
func (d Downloads) IsUnavailable() bool { return d.state == stateUnavailable }

// Count returns the resolved download count and whether the cell is resolved.
func (d Downloads) Count() (int, bool) { return d.value, d.state == stateResolved }

// String formats the cell the way it appears in the checkpoint file:
// empty for unresolved, "NA" for unavailable, a decimal integer otherwise.
func (d Downloads) String() string {
	switch d.state {
	case stateUnavailable:
		return unavailableMarker
	case stateResolved:
		return strconv.Itoa(d.value)
	default:
		return ""
	}
}

// parseDownloads reads a downloads cell back from its file representation.
func parseDownloads(cell string) (Downloads, error) {
	switch cell {
	case "":
		return Downloads{}, nil
	case unavailableMarker:
		return Unavailable(), nil
	}
	n, err := strconv.Atoi(cell)
	if err != nil || n < 0 {
		return Downloads{}, fmt.Errorf("%w: bad downloads value %q", ErrMalformed, cell)
	}
	return Resolved(n), nil
}

// Record is one row of the checkpoint table.
type Record struct {
	Name      string
	Downloads Downloads
}

// Table is an ordered mapping from package name to download cell. The order
// is the popularity ranking from the dependents fetch and survives every
// serialization round trip. Each name appears at most once.
//
// Table is not safe for concurrent use; deptally mutates it from a single
// goroutine.
type Table struct {
	order []string
	cells map[string]Downloads
}

// New creates a Table with one unresolved record per name, preserving order.
// Duplicate names keep their first position.
func New(names []string) *Table {
	t := &Table{cells: make(map[string]Downloads, len(names))}
	for _, name := range names {
		if _, ok := t.cells[name]; ok {
			continue
		}
		t.order = append(t.order, name)
		t.cells[name] = Downloads{}
	}
	return t
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.order) }

// Records returns the table rows in ranking order.
func (t *Table) Records() []Record {
	recs := make([]Record, len(t.order))
	for i, name := range t.order {
		recs[i] = Record{Name: name, Downloads: t.cells[name]}
	}
	return recs
}

// Get returns the download cell for name.
func (t *Table) Get(name string) (Downloads, bool) {
	d, ok := t.cells[name]
	return d, ok
}

// Resolve stores a download count for name. It is a no-op for names not in
// the table.
func (t *Table) Resolve(name string, n int) {
	if _, ok := t.cells[name]; ok {
		t.cells[name] = Resolved(n)
	}
}

// MarkUnavailable records that the statistics API has no data for name.
// It is a no-op for names not in the table.
func (t *Table) MarkUnavailable(name string) {
	if _, ok := t.cells[name]; ok {
		t.cells[name] = Unavailable()
	}
}
