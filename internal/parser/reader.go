package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"ballot/internal/models"
)

// Reader yields ballot records from a comma separated file. The first row
// is treated as a header and discarded.
type Reader struct {
	f    *os.File
	csv  *csv.Reader
	rows int

	// nextLine is the line the next record must start on and offset the
	// input position after the last record read. Both detect blank lines,
	// which encoding/csv drops silently.
	nextLine int
	offset   int64
}

var errBlankLine = errors.New("blank line")

// Open opens the ballot file at path and consumes its header row.
// The caller must Close the returned Reader.
func Open(path string) (*Reader, error) {
	log.Printf("Opening ballot file: %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, NewParseError("open", err)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.f = f
	return r, nil
}

// NewReader reads ballot records from src. The header row is consumed
// immediately.
func NewReader(src io.Reader) (*Reader, error) {
	reader := csv.NewReader(src)
	reader.Comma = ','
	// Row width is checked per record when fields are bound.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, malformed("header", 1, errors.New("missing header row"))
	}
	if err != nil {
		return nil, readError("header", err)
	}
	if line, _ := reader.FieldPos(0); line > 1 {
		return nil, malformed("header", 1, errBlankLine)
	}
	log.Printf("Found %d columns: %v", len(header), header)

	return &Reader{
		csv:      reader,
		nextLine: endLine(reader, header) + 1,
		offset:   reader.InputOffset(),
	}, nil
}

// Next returns the next ballot record, or io.EOF once all rows were read.
func (r *Reader) Next() (models.BallotRecord, error) {
	row, err := r.csv.Read()
	if err == io.EOF {
		if r.csv.InputOffset() > r.offset {
			return models.BallotRecord{}, malformed("row", r.nextLine, errBlankLine)
		}
		log.Printf("Finished reading ballots, processed %d rows", r.rows)
		return models.BallotRecord{}, io.EOF
	}
	if err != nil {
		return models.BallotRecord{}, readError("row", err)
	}

	line, _ := r.csv.FieldPos(0)
	if line > r.nextLine {
		return models.BallotRecord{}, malformed("row", r.nextLine, errBlankLine)
	}
	r.nextLine = endLine(r.csv, row) + 1
	r.offset = r.csv.InputOffset()

	record, err := models.NewBallotRecord(row)
	if err != nil {
		return models.BallotRecord{}, malformed("row", line, err)
	}

	r.rows++
	if r.rows%100000 == 0 {
		log.Printf("Processed %d rows...", r.rows)
	}
	return record, nil
}

// Close releases the underlying file, if any
func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	if err != nil {
		return fmt.Errorf("failed to close ballot file: %w", err)
	}
	return nil
}

// endLine returns the line on which the record most recently read ends.
// Quoted fields may span several lines.
func endLine(reader *csv.Reader, row []string) int {
	last := len(row) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(row[last], "\n")
}

// readError separates CSV syntax errors, which are malformed input, from
// failures of the underlying reader.
func readError(stage string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return malformed(stage, csvErr.Line, csvErr.Err)
	}
	return NewParseError(stage, err)
}
