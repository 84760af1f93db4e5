package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "Sheet1"

// Serializer writes a table as a downloadable file.
type Serializer interface {
	ContentType() string
	Write(w io.Writer, t Table) error
}

type XLSXSerializer struct {
	sheet string
}

func NewXLSXSerializer() *XLSXSerializer {
	return &XLSXSerializer{sheet: DefaultSheet}
}

func (s *XLSXSerializer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write puts the column labels on the first row and one record per row below.
func (s *XLSXSerializer) Write(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(s.sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range t.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row %d: %w", i+2, err)
		}
		values := rec.Values()
		if err := f.SetSheetRow(s.sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
