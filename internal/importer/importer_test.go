package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Height,Rotate\nhero,64,48,yes\ncoin,16,16,no\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Height;Rotate\nhero;64;48;yes\ncoin;16;16;no\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tHeight\nhero\t64\t48\ncoin\t16\t16\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Width|Height\nhero|64|48\ncoin|16|16\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Width", "Height", "Rotate"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Rotate != 3 {
		t.Errorf("expected Rotate at 3, got %d", mapping.Rotate)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	row := []string{"SPRITE", "W", "H", "ROT"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Rotate != 3 {
		t.Errorf("expected Rotate at 3, got %d", mapping.Rotate)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Height", "Width", "Frame"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Height != 0 {
		t.Errorf("expected Height at 0, got %d", mapping.Height)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Name != 2 {
		t.Errorf("expected Name at 2, got %d", mapping.Name)
	}
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	row := []string{"hero", "64", "48"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("numeric row should not be detected as header")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── parseRotate Tests ─────────────────────────────────────

func TestParseRotate(t *testing.T) {
	cases := []struct {
		in    string
		value bool
		ok    bool
	}{
		{"yes", true, true},
		{"Y", true, true},
		{"TRUE", true, true},
		{"1", true, true},
		{"no", false, true},
		{"false", false, true},
		{"0", false, true},
		{"maybe", false, false},
	}
	for _, c := range cases {
		value, ok := parseRotate(c.in)
		if value != c.value || ok != c.ok {
			t.Errorf("parseRotate(%q) = %v, %v; want %v, %v", c.in, value, ok, c.value, c.ok)
		}
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}
	return path
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempFile(t, "sprites.csv",
		"Name,Width,Height,Rotate\nhero,64,48,no\ncoin,16,16,yes\n")

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}
	if result.Sprites[0].Name != "hero" || result.Sprites[0].Width != 64 || result.Sprites[0].Height != 48 {
		t.Errorf("unexpected first sprite: %+v", result.Sprites[0])
	}
	if result.Sprites[0].CanRotate {
		t.Error("hero should not be rotatable")
	}
	if !result.Sprites[1].CanRotate {
		t.Error("coin should be rotatable")
	}
}

func TestImportCSV_SemicolonDelimiter(t *testing.T) {
	path := writeTempFile(t, "sprites.csv",
		"Name;Width;Height\nhero;64;48\n")

	result := ImportCSV(path)

	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_NoHeader(t *testing.T) {
	path := writeTempFile(t, "sprites.csv", "hero,64,48\ncoin,16,16\n")

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}
}

func TestImportCSV_BadRowsReportedAndSkipped(t *testing.T) {
	path := writeTempFile(t, "sprites.csv",
		"Name,Width,Height\nhero,64,48\nbroken,abc,48\nshort,\ncoin,16,16\n")

	result := ImportCSV(path)

	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 good sprites, got %d", len(result.Sprites))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", result.Errors)
	}
}

func TestImportCSV_NegativeDimensionsRejected(t *testing.T) {
	path := writeTempFile(t, "sprites.csv", "Name,Width,Height\nbad,-5,10\n")

	result := ImportCSV(path)

	if len(result.Sprites) != 0 {
		t.Fatalf("expected no sprites, got %d", len(result.Sprites))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportCSV_MissingNameGetsGenerated(t *testing.T) {
	path := writeTempFile(t, "sprites.csv", "Name,Width,Height\n,64,48\n")

	result := ImportCSV(path)

	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d", len(result.Sprites))
	}
	if result.Sprites[0].Name != "Sprite 1" {
		t.Errorf("expected generated name, got %q", result.Sprites[0].Name)
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected an error for an empty file")
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))

	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

func TestImportCSVFromReader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Width,Height\nhero,64,48\n"), ',')

	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
}

func TestImportCSV_HeaderMissingRequiredColumn(t *testing.T) {
	path := writeTempFile(t, "sprites.csv", "Name,Width,Rotate\nhero,64,yes\n")

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Fatal("expected an error about missing Height column")
	}
	if !strings.Contains(result.Errors[0], "Height") {
		t.Errorf("error should name the missing column: %v", result.Errors[0])
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Name", "Width", "Height", "Rotate"},
		{"hero", 64, 48, "no"},
		{"coin", 16, 16, "yes"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("cannot save test workbook: %v", err)
	}
	f.Close()

	result := ImportExcel(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}
	if result.Sprites[1].Name != "coin" || !result.Sprites[1].CanRotate {
		t.Errorf("unexpected second sprite: %+v", result.Sprites[1])
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))

	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}
