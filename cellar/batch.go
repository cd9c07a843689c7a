package cellar

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one batch-ingest instruction: kind "data" adds a scalar value,
// kind "file" adds the contents of the file at Value.
type Row struct {
	Kind  string
	Key   string
	Value string
}

// Row kinds.
const (
	RowData = "data"
	RowFile = "file"
)

// RowErrorFunc receives the index and content of a row whose Add failed.
type RowErrorFunc func(index int, row Row)

// AddPackage runs every row through Add or AddFile. A failing row is
// reported to onRowError — when non-nil — and ingestion continues; the
// batch itself only fails when the container is invalid.
func (s *Store) AddPackage(rows []Row, onRowError RowErrorFunc) error {
	if err := s.ensureValid(); err != nil {
		return err
	}
	for i, row := range rows {
		var err error
		if row.Kind == RowData {
			err = s.Add(row.Key, row.Value)
		} else {
			err = s.AddFile(row.Key, row.Value)
		}
		if err != nil && onRowError != nil {
			onRowError(i, row)
		}
	}
	return nil
}

// ReadRowsCSV reads batch rows from a CSV file. The whole file is validated
// before any row is returned: a record that is not a three-field data/file
// triple yields *InvalidCSVError. The decoder tolerates a UTF-8 byte order
// mark.
func ReadRowsCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	bom := unicode.UTF8BOM.NewDecoder()
	r := csv.NewReader(transform.NewReader(f, bom))
	r.FieldsPerRecord = -1

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &InvalidCSVError{Path: path}
		}
		if len(record) != 3 || (record[0] != RowData && record[0] != RowFile) {
			return nil, &InvalidCSVError{Path: path}
		}
		rows = append(rows, Row{Kind: record[0], Key: record[1], Value: record[2]})
	}
	return rows, nil
}

// ReadRows reads batch rows from a line stream, typically standard input.
// Lines are comma-separated triples; malformed lines are skipped silently.
func ReadRows(r io.Reader) ([]Row, error) {
	var rows []Row
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), ",")
		if len(fields) != 3 {
			continue
		}
		if fields[0] != RowData && fields[0] != RowFile {
			continue
		}
		rows = append(rows, Row{Kind: fields[0], Key: fields[1], Value: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
