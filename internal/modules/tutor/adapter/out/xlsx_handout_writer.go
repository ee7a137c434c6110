package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"pontutor/internal/modules/tutor/domain"
	tutorout "pontutor/internal/modules/tutor/port/out"
)

const (
	SheetGlossary = "Glossary"
	SheetTopology = "Topology"
	SheetSegments = "Segments"
)

type XLSXHandoutWriter struct{}

func NewXLSXHandoutWriter() tutorout.HandoutWriter {
	return XLSXHandoutWriter{}
}

func (XLSXHandoutWriter) Write(_ context.Context, path string, h domain.Handout) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it instead of leaving it empty.
	if err := f.SetSheetName(f.GetSheetName(0), SheetGlossary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	glossaryRows := [][]any{{"Key", "Display", "Read as", "Full", "Simple", "Function", "Example"}}
	for _, t := range h.Terms {
		glossaryRows = append(glossaryRows, []any{t.Key, t.Display, t.ReadAs, t.Full, t.Simple, t.Function, t.Example})
	}
	if err := writeRows(f, SheetGlossary, glossaryRows); err != nil {
		return err
	}

	nodeRows := [][]any{{"ID", "Type", "Label", "Ratio", "Caption"}}
	for _, n := range h.Nodes {
		nodeRows = append(nodeRows, []any{n.Node.ID, string(n.Node.Type), n.Node.Label, n.Node.Ratio, n.Caption})
	}
	if err := addSheet(f, SheetTopology, nodeRows); err != nil {
		return err
	}

	segmentRows := [][]any{{"From", "To", "Label"}}
	for _, l := range h.Segments {
		segmentRows = append(segmentRows, []any{l.From.ID, l.To.ID, l.Label})
	}
	if err := addSheet(f, SheetSegments, segmentRows); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("add sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
