package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/dbmrq/bingocard/internal/card"
	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
)

func testCards(t *testing.T, players ...string) []*card.Card {
	t.Helper()
	tiles := make([]string, 30)
	for i := range tiles {
		tiles[i] = fmt.Sprintf("tile %d", i)
	}
	cards, err := card.NewGenerator(1, "FREE SQUARE").GenerateAll(players, tiles)
	if err != nil {
		t.Fatalf("GenerateAll() error = %v", err)
	}
	return cards
}

func saveCards(t *testing.T, opts Options, cards []*card.Card) string {
	t.Helper()
	w, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	for _, c := range cards {
		if err := w.AddCard(c); err != nil {
			t.Fatalf("AddCard(%s) error = %v", c.Player, err)
		}
	}

	path := filepath.Join(t.TempDir(), "bingo.xlsx")
	if err := w.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return path
}

func openSaved(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriter_OneSheetPerPlayer(t *testing.T) {
	path := saveCards(t, Options{}, testCards(t, "Alice", "Bob", "Carol"))
	f := openSaved(t, path)

	if diff := cmp.Diff([]string{"Alice", "Bob", "Carol"}, f.GetSheetList()); diff != "" {
		t.Errorf("sheet list mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter_CardLayout(t *testing.T) {
	cards := testCards(t, "Alice")
	path := saveCards(t, Options{}, cards)
	f := openSaved(t, path)

	header, err := f.GetCellValue("Alice", "B2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if header != "SUMO BINGO! - Alice" {
		t.Errorf("header = %q", header)
	}

	merged, err := f.GetMergeCells("Alice")
	if err != nil {
		t.Fatalf("GetMergeCells() error = %v", err)
	}
	if len(merged) != 1 || merged[0].GetStartAxis() != "B2" || merged[0].GetEndAxis() != "F2" {
		t.Errorf("expected header merged over B2:F2, got %v", merged)
	}

	for row := 0; row < card.Size; row++ {
		for col := 0; col < card.Size; col++ {
			axis, _ := excelize.CoordinatesToCellName(col+2, row+3)
			got, err := f.GetCellValue("Alice", axis)
			if err != nil {
				t.Fatalf("GetCellValue(%s) error = %v", axis, err)
			}
			if want := cards[0].Cell(row, col).Text; got != want {
				t.Errorf("%s = %q, want %q", axis, got, want)
			}
		}
	}

	center, _ := f.GetCellValue("Alice", "D5")
	if center != "FREE SQUARE" {
		t.Errorf("center D5 = %q, want FREE SQUARE", center)
	}
}

func TestWriter_PageSetup(t *testing.T) {
	path := saveCards(t, Options{}, testCards(t, "Alice"))
	f := openSaved(t, path)

	layout, err := f.GetPageLayout("Alice")
	if err != nil {
		t.Fatalf("GetPageLayout() error = %v", err)
	}
	if layout.Orientation == nil || *layout.Orientation != "landscape" {
		t.Errorf("orientation = %v, want landscape", layout.Orientation)
	}

	margins, err := f.GetPageMargins("Alice")
	if err != nil {
		t.Fatalf("GetPageMargins() error = %v", err)
	}
	if margins.Left == nil || *margins.Left != pageMargin {
		t.Errorf("left margin = %v, want %v", margins.Left, pageMargin)
	}

	width, err := f.GetColWidth("Alice", "C")
	if err != nil {
		t.Fatalf("GetColWidth() error = %v", err)
	}
	if math.Abs(width-columnWidth(cellPixels)) > 0.01 {
		t.Errorf("column width = %v, want %v", width, columnWidth(cellPixels))
	}

	height, err := f.GetRowHeight("Alice", 4)
	if err != nil {
		t.Fatalf("GetRowHeight() error = %v", err)
	}
	if height != rowHeight(cellPixels) {
		t.Errorf("row height = %v, want %v", height, rowHeight(cellPixels))
	}
}

func TestWriter_FreeSquareStyle(t *testing.T) {
	path := saveCards(t, Options{}, testCards(t, "Alice"))
	f := openSaved(t, path)

	idx, err := f.GetCellStyle("Alice", "D5")
	if err != nil {
		t.Fatalf("GetCellStyle() error = %v", err)
	}
	style, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle() error = %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Error("free square should be bold")
	}
	if len(style.Fill.Color) == 0 || !strings.HasSuffix(strings.ToUpper(style.Fill.Color[0]), "222222") {
		t.Errorf("free square fill = %v, want 222222", style.Fill.Color)
	}
	if style.Alignment == nil || !style.Alignment.WrapText {
		t.Error("free square should wrap text")
	}
}

func TestWriter_DocProps(t *testing.T) {
	path := saveCards(t, Options{Title: "OFFICE BINGO", RunID: "run-123"}, testCards(t, "Alice"))
	f := openSaved(t, path)

	props, err := f.GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps() error = %v", err)
	}
	if props.Identifier != "run-123" {
		t.Errorf("Identifier = %q, want run-123", props.Identifier)
	}
	if props.Title != "OFFICE BINGO" {
		t.Errorf("Title = %q", props.Title)
	}

	header, _ := f.GetCellValue("Alice", "B2")
	if header != "OFFICE BINGO - Alice" {
		t.Errorf("header = %q", header)
	}
}

func TestWriter_ReleasesLockFile(t *testing.T) {
	path := saveCards(t, Options{}, testCards(t, "Alice"))

	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("lock file should stay in place after save: %v", err)
	}

	other := flock.New(path + ".lock")
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("lock should be released after save: ok=%v err=%v", ok, err)
	}
	if err := other.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	// A second save reuses the existing lock file.
	w, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	if err := w.AddCard(testCards(t, "Bob")[0]); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	if err := w.Save(path); err != nil {
		t.Errorf("second Save() error = %v", err)
	}
}

func TestWriter_SaveLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bingo.xlsx")
	other := flock.New(path + ".lock")
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("failed to take lock: ok=%v err=%v", ok, err)
	}
	defer other.Unlock()

	w, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	if err := w.AddCard(testCards(t, "Alice")[0]); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}

	err = w.Save(path)
	if err == nil {
		t.Fatal("expected error while output is locked")
	}
	if !errors.Is(err, bingoerrors.ErrWorkbook) {
		t.Errorf("error = %v, want ErrWorkbook", err)
	}
}

func TestWriter_AddCardErrors(t *testing.T) {
	w, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	cards := testCards(t, "Alice")
	if err := w.AddCard(cards[0]); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}

	dup := *cards[0]
	dup.Player = "ALICE"
	if err := w.AddCard(&dup); !errors.Is(err, bingoerrors.ErrCard) {
		t.Errorf("duplicate sheet: error = %v, want ErrCard", err)
	}

	bad := *cards[0]
	bad.Player = "a/b"
	if err := w.AddCard(&bad); !errors.Is(err, bingoerrors.ErrCard) {
		t.Errorf("invalid name: error = %v, want ErrCard", err)
	}

	if diff := cmp.Diff([]string{"Alice"}, w.sheets); diff != "" {
		t.Errorf("failed cards should not add sheets (-want +got):\n%s", diff)
	}
}

func TestWriter_SaveWithoutCards(t *testing.T) {
	w, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	err = w.Save(filepath.Join(t.TempDir(), "empty.xlsx"))
	if !errors.Is(err, bingoerrors.ErrWorkbook) {
		t.Errorf("error = %v, want ErrWorkbook", err)
	}
}

func TestWriter_WriteTo(t *testing.T) {
	w, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	for _, c := range testCards(t, "Alice", "Bob") {
		if err := w.AddCard(c); err != nil {
			t.Fatalf("AddCard() error = %v", err)
		}
	}

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n == 0 || buf.Len() == 0 {
		t.Fatal("WriteTo() wrote nothing")
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()
	if got := len(f.GetSheetList()); got != 2 {
		t.Errorf("got %d sheets, want 2", got)
	}
}

func TestWriter_CreatesOutputDir(t *testing.T) {
	w, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	if err := w.AddCard(testCards(t, "Alice")[0]); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "cards.xlsx")
	if err := w.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected workbook at %s: %v", path, err)
	}
}

func TestHeaderText(t *testing.T) {
	if got := HeaderText("SUMO BINGO!", "Bob"); got != "SUMO BINGO! - Bob" {
		t.Errorf("HeaderText() = %q", got)
	}
}
