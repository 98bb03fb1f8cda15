package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DefaultPath is the dataset location used when none is configured.
const DefaultPath = "adult.data.csv"

var (
	// ErrMissingFile is returned when the dataset file cannot be opened.
	ErrMissingFile = errors.New("dataset file missing or unreadable")

	// ErrSchemaMismatch is returned when a row does not fit the column schema.
	ErrSchemaMismatch = errors.New("dataset schema mismatch")
)

// Load reads the headerless table at path from fs and returns the cleaned
// Dataset.
func Load(fs afero.Fs, path string) (*Dataset, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingFile, "dataset: open %q: %v", path, err)
	}
	defer f.Close()

	in, closeFn, err := decompress(f, path)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingFile, "dataset: decompress %q: %v", path, err)
	}
	defer closeFn()

	records, err := Decode(in)
	if err != nil {
		return nil, errors.WithMessagef(err, "dataset: %q", path)
	}

	ds := New(records)
	slog.Info("dataset: loaded",
		"path", path,
		"raw_rows", humanize.Comma(int64(len(records))),
		"rows", humanize.Comma(int64(ds.Len())),
	)
	return ds, nil
}

// Decode parses headerless rows from r. Leading spaces after the delimiter
// are ignored so both "a,b" and "a, b" files decode the same way.
// Short rows are padded with empty cells, so their missing fields decode as
// missing and an empty race drops them in Clean. A row wider than Columns is
// a schema mismatch. An empty input yields no records and no error.
func Decode(r io.Reader) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rows, err := readRows(cr, len(Columns))
	if err != nil {
		return nil, errors.Wrapf(ErrSchemaMismatch, "decode: %v", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []*Record
	if err := gocsv.UnmarshalCSVWithoutHeaders(&rows, &records); err != nil {
		return nil, errors.Wrapf(ErrSchemaMismatch, "decode: %v", err)
	}
	for _, rec := range records {
		rec.trim()
	}
	return records, nil
}

// readRows reads every row from cr, padding each one to width cells.
func readRows(cr *csv.Reader, width int) (rowSet, error) {
	var rows rowSet
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if len(row) > width {
			line, _ := cr.FieldPos(0)
			return nil, errors.Errorf("record on line %d: %d fields, want at most %d", line, len(row), width)
		}
		for len(row) < width {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
}

// rowSet replays rows that were already read as a gocsv.CSVReader.
type rowSet [][]string

func (s *rowSet) Read() ([]string, error) {
	if len(*s) == 0 {
		return nil, io.EOF
	}
	row := (*s)[0]
	*s = (*s)[1:]
	return row, nil
}

func (s *rowSet) ReadAll() ([][]string, error) {
	all := *s
	*s = nil
	return all, nil
}

// decompress wraps r in a decoder chosen by the file extension.
// The returned func releases decoder resources; it never closes r.
func decompress(r io.Reader, path string) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	default:
		return r, func() {}, nil
	}
}
