package ingest

import (
	"strings"
	"testing"

	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statisticsCSV = `timestamp,fire_start_time,location,severity
2024-06-01 10:00,2024-06-01 09:45,43.5,high
2024-06-02 11:30,2024-06-02 11:00,44.1,low
`

func TestParseDataset_Success(t *testing.T) {
	// Действие
	rows, err := ParseDataset(strings.NewReader(statisticsCSV), models.KindStatistics)

	// Проверки
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.String("2024-06-01 10:00"), rows[0]["timestamp"])
	assert.Equal(t, models.Number(43.5), rows[0]["location"])
	assert.Equal(t, models.String("high"), rows[0]["severity"])
}

func TestParseDataset_MissingColumns(t *testing.T) {
	// Подготовка: нет fire_start_time и severity
	csv := "timestamp,location\n2024-06-01,43.5\n"

	// Действие
	rows, err := ParseDataset(strings.NewReader(csv), models.KindStatistics)

	// Проверки: частичный результат не формируется
	require.Error(t, err)
	assert.Nil(t, rows)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.KindStatistics, vErr.Kind)
	assert.Equal(t, []string{"fire_start_time", "severity"}, vErr.MissingColumns)
	assert.Contains(t, vErr.Error(), "fire_start_time, severity")
}

func TestParseDataset_EmptyFile(t *testing.T) {
	_, err := ParseDataset(strings.NewReader(""), models.KindStatistics)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header row is required")
}

func TestParseDataset_HeaderOnly(t *testing.T) {
	csv := "timestamp,fire_start_time,location,severity\n"

	rows, err := ParseDataset(strings.NewReader(csv), models.KindStatistics)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseDataset_UnknownKind(t *testing.T) {
	_, err := ParseDataset(strings.NewReader(statisticsCSV), models.DatasetKind("weather"))
	require.Error(t, err)
}

func TestParseDataset_DynamicTyping(t *testing.T) {
	// Подготовка: числа, булевы значения и строки в одной колонке
	csv := "timestamp,fire_start_time,location,severity,extra\n" +
		"a,b,c,high,42\n" +
		"a,b,c,low,true\n" +
		"a,b,c,low,text\n"

	rows, err := ParseDataset(strings.NewReader(csv), models.KindStatistics)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.Number(42), rows[0]["extra"])
	assert.Equal(t, models.Boolean(true), rows[1]["extra"])
	assert.Equal(t, models.String("text"), rows[2]["extra"])
}

func TestParseDataset_EmptyCellsAndRows(t *testing.T) {
	// Подготовка: пустая ячейка и полностью пустая строка
	csv := "timestamp,fire_start_time,location,severity\n" +
		"2024-06-01,,43.5,high\n" +
		",,,\n" +
		"2024-06-02,2024-06-02,44.1,low\n"

	rows, err := ParseDataset(strings.NewReader(csv), models.KindStatistics)

	require.NoError(t, err)
	// Полностью пустая строка не попадает в результат
	require.Len(t, rows, 2)

	// Пустая ячейка означает отсутствие ключа
	_, ok := rows[0]["fire_start_time"]
	assert.False(t, ok)
	assert.Len(t, rows[0], 3)
}

func TestParseDataset_BOMHeader(t *testing.T) {
	csv := "\uFEFFtimestamp,fire_start_time,location,severity\na,b,c,low\n"

	rows, err := ParseDataset(strings.NewReader(csv), models.KindStatistics)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.String("a"), rows[0]["timestamp"])
}

func TestParseDataset_PredictionsColumns(t *testing.T) {
	// Подготовка: полный набор обязательных колонок предсказаний
	csv := "timestamp,temperature,humidity,wind_speed,precipitation,vegetation_index,human_activity_index,latitude,longitude\n" +
		"2024-06-01,30,40,12,0,0.7,0.3,43.5,39.7\n"

	rows, err := ParseDataset(strings.NewReader(csv), models.KindPredictions)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.Number(43.5), rows[0]["latitude"])
}
