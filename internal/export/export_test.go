package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zacharyhyde/listprofit/internal/funnel"
)

func testScenarios() (funnel.Scenario, funnel.Scenario) {
	current := funnel.Scenario{
		Name:           "Current",
		ListSize:       500_000,
		SendsPerWeek:   2,
		OpenRate:       0.22,
		ClickRate:      0.06,
		ConversionRate: 0.03,
		AvgOrderValue:  97,
		GrossMargin:    0.6,
	}
	proposed := current
	proposed.Name = "New"
	proposed.SendsPerWeek = 7
	proposed.OpenRate = 0.20
	proposed.ClickRate = 0.05
	proposed.ConversionRate = 0.02
	return current, proposed
}

func TestExportCSV(t *testing.T) {
	current, proposed := testScenarios()
	exporter := NewComparisonExporter(t.TempDir(), zap.NewNop())

	path, err := exporter.Export(current, proposed, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	// Header plus current, new, uplift rows.
	require.Len(t, records, 4)
	assert.Equal(t, funnel.CSVHeaders(), records[0])
	assert.Equal(t, "Current", records[1][0])
	assert.Equal(t, "New", records[2][0])
	assert.Equal(t, "Uplift", records[3][0])
	assert.Equal(t, "52000000", records[1][2])
	assert.Equal(t, "182000000", records[2][2])
}

func TestExportJSON(t *testing.T) {
	current, proposed := testScenarios()
	exporter := NewComparisonExporter(t.TempDir(), zap.NewNop())

	path, err := exporter.Export(current, proposed, FormatJSON)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))

	assert.False(t, report.ExportTime.IsZero())
	assert.Equal(t, current, report.Current)
	assert.Equal(t, proposed, report.New)
	assert.Equal(t, "positive", report.Verdict)
	assert.InDelta(t, 1_533_376.0, report.Comparison.RevenueDelta, 1e-3)
}

func TestExportAllWritesBothFormats(t *testing.T) {
	current, proposed := testScenarios()
	exporter := NewComparisonExporter(t.TempDir(), zap.NewNop())

	paths, err := exporter.ExportAll(current, proposed)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, ".csv", filepath.Ext(paths[0]))
	assert.Equal(t, ".json", filepath.Ext(paths[1]))
	for _, path := range paths {
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	current, proposed := testScenarios()
	exporter := NewComparisonExporter(t.TempDir(), zap.NewNop())

	_, err := exporter.Export(current, proposed, ExportFormat("xml"))
	assert.Error(t, err)
}
