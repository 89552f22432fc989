// Package tabular reads the CSV sheets describing a network: hosting
// environments, software systems, and the data flows between systems.
//
// Columns are resolved by header name, so column order does not matter
// and extra columns are ignored. A row missing its required name
// field(s) produces no record and is skipped without error; everything
// else about a row is taken at face value.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/libsys/netdiag/internal/netdiag"
)

// Sheet column names.
const (
	colEnvironment = "Environment"
	colHost        = "Host"
	colOnCampus    = "On Campus"
	colSystem      = "System"
	colSource      = "source"
	colTarget      = "target"
	colMode        = "mode"
)

// SystemFields is the full expected column schema of the systems
// sheet. Only System and Environment are consumed here; the rest
// document the sheet for its maintainers and for future readers of
// the ownership and sensitivity columns.
var SystemFields = [...]string{
	"System",
	"Environment",
	"Descr",
	"Functional Owner",
	"Technical Owner",
	"Sensitive",
	"Cataloging",
	"Inventory",
	"Finance",
	"User",
	"Circ",
	"License",
	"Notes",
}

// A row is one CSV record with fields addressable by header name,
// like Python's csv.DictReader.
type row struct {
	index  map[string]int
	fields []string
}

// get returns the named field, or "" when the column or value is
// absent from this row.
func (r row) get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// eachRow reads the header and then calls fn for every data row.
// headerFn, if non-nil, is called once with the header columns.
func eachRow(r io.Reader, headerFn func([]string), fn func(row)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil // empty sheet, no records
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if headerFn != nil {
		headerFn(header)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading row: %w", err)
		}
		fn(row{index: index, fields: fields})
	}
}

// ReadEnvironments reads the environments sheet. Required column:
// Environment. Host is carried through verbatim; On Campus is true
// for any non-blank value.
func ReadEnvironments(r io.Reader) ([]*netdiag.Environment, error) {
	var envs []*netdiag.Environment
	err := eachRow(r, nil, func(rw row) {
		name := rw.get(colEnvironment)
		if name == "" {
			slog.Debug("skipping environment row with blank name")
			return
		}
		envs = append(envs, netdiag.NewEnvironment(name, rw.get(colHost), rw.get(colOnCampus) != ""))
	})
	if err != nil {
		return nil, fmt.Errorf("environments sheet: %w", err)
	}
	return envs, nil
}

// checkSystemHeader notes columns outside the expected schema. Extra
// columns are still ignored, as a spreadsheet export often grows them.
func checkSystemHeader(header []string) {
	for _, name := range header {
		if !slices.Contains(SystemFields[:], name) {
			slog.Debug("systems sheet has a column outside the expected schema", "column", name)
		}
	}
}

// ReadSystems reads the systems sheet. Required column: System.
// Environment may be blank.
func ReadSystems(r io.Reader) ([]*netdiag.System, error) {
	var systems []*netdiag.System
	err := eachRow(r, checkSystemHeader, func(rw row) {
		name := rw.get(colSystem)
		if name == "" {
			slog.Debug("skipping system row with blank name")
			return
		}
		systems = append(systems, netdiag.NewSystem(name, rw.get(colEnvironment)))
	})
	if err != nil {
		return nil, fmt.Errorf("systems sheet: %w", err)
	}
	return systems, nil
}

// ReadDataFlows reads the data-flow sheet. Required columns: source
// and target. The mode column is carried through verbatim; "r" marks a
// read-only flow and any other value is treated as a write.
func ReadDataFlows(r io.Reader) ([]*netdiag.DataFlow, error) {
	var flows []*netdiag.DataFlow
	err := eachRow(r, nil, func(rw row) {
		source, target := rw.get(colSource), rw.get(colTarget)
		if source == "" || target == "" {
			slog.Debug("skipping data-flow row with blank endpoint",
				"source", source, "target", target)
			return
		}
		flows = append(flows, &netdiag.DataFlow{
			Source: source,
			Target: target,
			Mode:   rw.get(colMode),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("data-flow sheet: %w", err)
	}
	return flows, nil
}
