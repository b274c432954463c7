package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// ReportFileName is the file a report is stored in inside a reports directory.
const ReportFileName = "report.yaml"

// ReportStore persists run reports.
type ReportStore interface {
	// SaveReport writes report into the reports directory dir.
	SaveReport(ctx context.Context, dir m.Path, report m.Report) error
	// LoadReport reads a report from a reports directory or a report file.
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport implements ReportStore.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	target := filepath.Join(string(dir), ReportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", target, err)
	}

	return nil
}

// LoadReport implements ReportStore.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	target := string(path)
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, ReportFileName)
	}

	// #nosec G304 - report path is supplied by the user on purpose
	data, err := os.ReadFile(target)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", target, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", target, err)
	}

	return report, nil
}
