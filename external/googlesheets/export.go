package googlesheets

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

var utf8BOM = []byte("\ufeff")

// export is one parsed CSV tab: the header line plus one header-keyed record
// per following line.
type export struct {
	headers []string
	records []map[string]string
}

func parseExport(raw []byte) (export, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return export{headers: []string{}, records: []map[string]string{}}, nil
	}
	if err != nil {
		return export{}, err
	}

	headers := make([]string, len(header))
	for i, name := range header {
		headers[i] = strings.TrimSpace(name)
	}

	records := make([]map[string]string, 0, 32)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return export{}, err
		}

		record := make(map[string]string, len(headers))
		for i, name := range headers {
			if name == "" {
				continue
			}
			if i < len(fields) {
				record[name] = fields[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	return export{headers: headers, records: records}, nil
}

func (e export) table() sheet.Table {
	return sheet.Table{Headers: e.headers, Rows: e.records}
}
