package out_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	glossary "pontutor/internal/modules/glossary/domain"
	topology "pontutor/internal/modules/topology/domain"
	tutorout "pontutor/internal/modules/tutor/adapter/out"
	"pontutor/internal/modules/tutor/domain"
)

func TestXLSXHandoutWriterSheets(t *testing.T) {
	t.Parallel()
	olt := topology.Node{ID: "OLT", Type: topology.NodeTypeOLT, Label: "OLT Rack"}
	sp := topology.Node{ID: "F1Sa", Type: topology.NodeTypeSplitter, Label: "F1Sa", Ratio: "1:4"}
	h := domain.Handout{
		Terms: []glossary.Term{{Key: "OLT", Display: "OLT", Full: "Optical Line Terminal", Example: "Rack"}},
		Nodes: []domain.HandoutNode{
			{Node: olt, Caption: "Optical Line Terminal"},
			{Node: sp, Caption: "Passive Optical Splitter"},
		},
		Segments: []topology.Link{{From: olt, To: sp, Label: "24F"}},
	}
	path := filepath.Join(t.TempDir(), "nested", "handout.xlsx")
	if err := tutorout.NewXLSXHandoutWriter().Write(context.Background(), path, h); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{tutorout.SheetGlossary, tutorout.SheetTopology, tutorout.SheetSegments}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("expected sheets %v, got %v", want, sheets)
		}
	}

	rows, err := f.GetRows(tutorout.SheetTopology)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[2][0] != "F1Sa" || rows[2][3] != "1:4" || rows[2][4] != "Passive Optical Splitter" {
		t.Fatalf("unexpected topology rows: %v", rows)
	}
	rows, err = f.GetRows(tutorout.SheetSegments)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "OLT" || rows[1][2] != "24F" {
		t.Fatalf("unexpected segment rows: %v", rows)
	}
	full, err := f.GetCellValue(tutorout.SheetGlossary, "D2")
	if err != nil || full != "Optical Line Terminal" {
		t.Fatalf("unexpected glossary cell %q %v", full, err)
	}
}
