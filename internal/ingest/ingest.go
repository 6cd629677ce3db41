package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

// ValidationError - ошибка валидации загруженного файла.
// Содержит точный список отсутствующих обязательных колонок.
type ValidationError struct {
	Kind           models.DatasetKind
	MissingColumns []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset %q is missing required columns: %s",
		e.Kind, strings.Join(e.MissingColumns, ", "))
}

// ParseDataset разбирает загруженный CSV-файл в последовательность строк.
// Строка заголовка определяет имена колонок; значения типизируются динамически.
// При отсутствии обязательных колонок возвращается *ValidationError,
// частичный результат не формируется.
func ParseDataset(r io.Reader, kind models.DatasetKind) ([]models.RawRow, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("ingest: unknown dataset kind %q", kind)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ingest: empty file, header row is required")
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
	}

	if missing := missingColumns(columns, kind.RequiredColumns()); len(missing) > 0 {
		return nil, &ValidationError{Kind: kind, MissingColumns: missing}
	}

	rows := make([]models.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: failed to read data row: %w", err)
		}

		row := models.RawRow{}
		for i, cell := range record {
			if i >= len(columns) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				// Пустые ячейки пропускаются - ключ отсутствует в строке
				continue
			}
			row[columns[i]] = coerce(cell)
		}

		// Полностью пустые строки не попадают в результат
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// missingColumns вычисляет разность множеств required - headers
func missingColumns(headers, required []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}

	missing := make([]string, 0)
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// coerce приводит текст ячейки к числу, булеву значению или строке
func coerce(cell string) models.Value {
	if n, err := strconv.ParseFloat(cell, 64); err == nil {
		return models.Number(n)
	}
	switch strings.ToLower(cell) {
	case "true":
		return models.Boolean(true)
	case "false":
		return models.Boolean(false)
	}
	return models.String(cell)
}
