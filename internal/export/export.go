package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zacharyhyde/listprofit/internal/funnel"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// Report is the JSON export payload: the full comparison plus metadata.
type Report struct {
	ExportTime time.Time         `json:"export_time"`
	Current    funnel.Scenario   `json:"current_scenario"`
	New        funnel.Scenario   `json:"new_scenario"`
	Comparison funnel.Comparison `json:"comparison"`
	Verdict    string            `json:"verdict"`
}

// ComparisonExporter writes comparison snapshots to disk.
type ComparisonExporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewComparisonExporter creates an exporter writing into outputDir.
func NewComparisonExporter(outputDir string, logger *zap.Logger) *ComparisonExporter {
	return &ComparisonExporter{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Export writes the comparison in the requested format and returns the
// output path.
func (ce *ComparisonExporter) Export(current, proposed funnel.Scenario, format ExportFormat) (string, error) {
	if err := os.MkdirAll(ce.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(ce.outputDir, ce.generateFilename(format))

	var err error
	switch format {
	case FormatCSV:
		err = ce.exportToCSV(current, proposed, outputPath)
	case FormatJSON:
		err = ce.exportToJSON(current, proposed, outputPath)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return "", err
	}

	ce.logger.Info("Comparison exported",
		zap.String("file", outputPath),
		zap.String("format", string(format)))

	return outputPath, nil
}

// ExportAll writes both formats concurrently and returns the output paths.
func (ce *ComparisonExporter) ExportAll(current, proposed funnel.Scenario) ([]string, error) {
	paths := make([]string, 2)

	var g errgroup.Group
	g.Go(func() error {
		path, err := ce.Export(current, proposed, FormatCSV)
		paths[0] = path
		return err
	})
	g.Go(func() error {
		path, err := ce.Export(current, proposed, FormatJSON)
		paths[1] = path
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// generateFilename creates a timestamped filename for the export.
func (ce *ComparisonExporter) generateFilename(format ExportFormat) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("comparison_%s.%s", timestamp, format)
}

// exportToCSV writes one row per scenario plus an uplift row, so the file
// reads as the same three-way table the UI shows.
func (ce *ComparisonExporter) exportToCSV(current, proposed funnel.Scenario, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(funnel.CSVHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	comparison := funnel.Compare(current, proposed)
	rows := [][]string{
		comparison.Current.ToCSV(),
		comparison.New.ToCSV(),
		comparison.UpliftToCSV(),
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// exportToJSON writes the full report with metadata.
func (ce *ComparisonExporter) exportToJSON(current, proposed funnel.Scenario, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	comparison := funnel.Compare(current, proposed)
	report := Report{
		ExportTime: time.Now(),
		Current:    current,
		New:        proposed,
		Comparison: comparison,
		Verdict:    comparison.Verdict().String(),
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
