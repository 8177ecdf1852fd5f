package trips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Upload is a user-supplied file. A nil *Upload means nothing was supplied.
type Upload struct {
	Name string
	Body io.Reader
}

// Ingestion is the outcome of reading an upload.
type Ingestion struct {
	Status Status
	Source string
	Raw    dataframe.DataFrame
}

// missingMarkers are cell values loaded as missing.
var missingMarkers = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<nil>"}

// Ingest reads the upload into a raw table with every column typed as string.
// The schema is not validated here.
func Ingest(u *Upload) (Ingestion, error) {
	if u == nil || u.Body == nil {
		return Ingestion{Status: StatusWaiting}, nil
	}

	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(u.Name)); ext {
	case ".xlsx":
		records, err = readXLSX(u.Body)
	case "", ".csv", ".txt":
		records, err = readCSV(u.Body)
	default:
		err = fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return Ingestion{}, &MalformedInputError{Source: u.Name, Err: err}
	}

	df, err := loadRecords(records)
	if err != nil {
		return Ingestion{}, &MalformedInputError{Source: u.Name, Err: err}
	}

	return Ingestion{Status: StatusReady, Source: u.Name, Raw: df}, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return padRows(records)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("read workbook props: %w", err)
	}
	date1904 := props.Date1904 != nil && *props.Date1904

	dates := dateStyles{file: f, known: map[int]bool{}}
	for i := 1; i < len(rows); i++ {
		for j, value := range rows[i] {
			serial, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			isDate, err := dates.cell(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("read style of %s: %w", cell, err)
			}
			if !isDate {
				continue
			}
			t, err := excelize.ExcelDateToTime(serial, date1904)
			if err != nil {
				continue
			}
			rows[i][j] = t.Format(TimestampLayout)
		}
	}

	// GetRows trims trailing empty cells.
	return padRows(rows)
}

// padRows pads short rows to the header width and rejects rows wider than it.
func padRows(rows [][]string) ([][]string, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) > width {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", i+2, len(row), width)
		}
		for len(row) < width {
			row = append(row, "")
		}
		rows[i+1] = row
	}
	return rows, nil
}

// dateStyles reports whether a cell's number format renders a date or time.
// Results are cached per style index.
type dateStyles struct {
	file  *excelize.File
	known map[int]bool
}

func (d dateStyles) cell(sheet, cell string) (bool, error) {
	idx, err := d.file.GetCellStyle(sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := d.known[idx]; ok {
		return isDate, nil
	}
	style, err := d.file.GetStyle(idx)
	if err != nil {
		return false, err
	}
	isDate := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	d.known[idx] = isDate
	return isDate, nil
}

// isDateNumFmt reports whether a built-in or locale number format id is a
// date or time format.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	var (
		quoted, escaped bool
		bracket         *strings.Builder
	)
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case quoted:
			quoted = r != '"'
		case bracket != nil:
			if r != ']' {
				bracket.WriteRune(r)
				continue
			}
			// Elapsed time such as [h] or [mm] is a time format; colours and
			// locales are not.
			if inner := bracket.String(); inner != "" && strings.Trim(inner, "hms") == "" {
				return true
			}
			bracket = nil
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = true
		case r == '[':
			bracket = &strings.Builder{}
		case strings.ContainsRune("ymdhs", r):
			return true
		}
	}
	return false
}
