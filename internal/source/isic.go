//spellchecker:words source
package source

//spellchecker:words encoding errors strings github ieograph internal crid
import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/FAU-CDI/ieograph/internal/crid"
)

// ReadClassification reads the codes of an industrial classification from r.
// file is used only within error messages.
//
// The input is a comma separated file with a header row, followed by one row per code.
// The first column holds the code, the second its label; further columns are ignored.
func ReadClassification(r io.Reader, file string) ([]crid.ClassificationCode, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var codes []crid.ClassificationCode
	for header := true; ; header = false {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var record string
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				record = fmt.Sprintf("line %d", pe.Line)
			}
			return nil, &FormatError{File: file, Record: record, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if header {
			continue
		}

		code, fe := parseCode(row)
		if fe != nil {
			fe.File = file
			fe.Record = fmt.Sprintf("line %d", line)
			return nil, fe
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func parseCode(row []string) (crid.ClassificationCode, *FormatError) {
	if len(row) < 2 {
		return crid.ClassificationCode{}, &FormatError{Field: "label", Err: fmt.Errorf("expected 2 columns, got %d", len(row))}
	}

	code := crid.ClassificationCode{
		Code:  strings.TrimSpace(row[0]),
		Label: strings.TrimSpace(row[1]),
	}
	switch {
	case code.Code == "":
		return code, &FormatError{Field: "code", Err: errMissing}
	case code.Label == "":
		return code, &FormatError{Field: "label", Err: errMissing}
	}
	return code, nil
}
