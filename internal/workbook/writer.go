package workbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"

	"github.com/dbmrq/bingocard/internal/card"
	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
)

// Options configures a Writer.
type Options struct {
	// Title is the header prefix; the player name is appended.
	Title string
	// RunID is stored in the workbook's document properties.
	RunID string
	// Creator is stored in the workbook's document properties.
	Creator string
}

// Writer accumulates card worksheets in a single workbook.
type Writer struct {
	file   *excelize.File
	opts   Options
	sheets []string
	names  map[string]struct{}

	cellStyle int
	freeStyle int
}

// New creates an empty Writer.
func New(opts Options) (*Writer, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Creator == "" {
		opts.Creator = "bingocard"
	}

	f := excelize.NewFile()
	w := &Writer{
		file:  f,
		opts:  opts,
		names: make(map[string]struct{}),
	}

	if err := w.createStyles(); err != nil {
		f.Close()
		return nil, bingoerrors.Wrap(err, bingoerrors.ErrWorkbook, "failed to create cell styles")
	}

	return w, nil
}

func (w *Writer) createStyles() error {
	border := []excelize.Border{
		{Type: "left", Color: borderColor, Style: borderMedium},
		{Type: "right", Color: borderColor, Style: borderMedium},
		{Type: "top", Color: borderColor, Style: borderMedium},
		{Type: "bottom", Color: borderColor, Style: borderMedium},
	}
	align := &excelize.Alignment{
		Horizontal: "center",
		Vertical:   "center",
		WrapText:   true,
	}

	cell, err := w.file.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: align,
	})
	if err != nil {
		return err
	}

	free, err := w.file.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: align,
		Font: &excelize.Font{
			Bold:  true,
			Color: freeFontColor,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{freeFillColor},
			Pattern: fillPatternSolid,
		},
	})
	if err != nil {
		return err
	}

	w.cellStyle = cell
	w.freeStyle = free
	return nil
}

// AddCard writes c to a new worksheet named after its player.
func (w *Writer) AddCard(c *card.Card) error {
	name := c.Player
	if err := ValidateSheetName(name); err != nil {
		return bingoerrors.InvalidPlayerName(name, err.Error())
	}
	key := strings.ToLower(name)
	if _, ok := w.names[key]; ok {
		return bingoerrors.DuplicatePlayer(name)
	}

	if err := w.newSheet(name); err != nil {
		return bingoerrors.InvalidSheetName(name, err)
	}
	w.names[key] = struct{}{}
	w.sheets = append(w.sheets, name)

	if err := w.layoutSheet(name, c); err != nil {
		return bingoerrors.Wrap(err, bingoerrors.ErrWorkbook, fmt.Sprintf("failed to write sheet %q", name))
	}
	return nil
}

// newSheet renames the default sheet for the first card and appends a new
// one for every later card.
func (w *Writer) newSheet(name string) error {
	if len(w.sheets) == 0 {
		return w.file.SetSheetName(w.file.GetSheetName(0), name)
	}
	_, err := w.file.NewSheet(name)
	return err
}

func (w *Writer) layoutSheet(sheet string, c *card.Card) error {
	landscape := "landscape"
	if err := w.file.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Orientation: &landscape,
	}); err != nil {
		return err
	}

	margin := pageMargin
	if err := w.file.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Left:   &margin,
		Right:  &margin,
		Top:    &margin,
		Bottom: &margin,
		Header: &margin,
		Footer: &margin,
	}); err != nil {
		return err
	}

	firstCol, err := excelize.ColumnNumberToName(firstCardCol)
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(firstCardCol + card.Size - 1)
	if err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, firstCol, lastCol, columnWidth(cellPixels)); err != nil {
		return err
	}

	headerStart := fmt.Sprintf("%s%d", firstCol, headerRow)
	headerEnd := fmt.Sprintf("%s%d", lastCol, headerRow)
	if err := w.file.MergeCell(sheet, headerStart, headerEnd); err != nil {
		return err
	}
	if err := w.file.SetCellStr(sheet, headerStart, HeaderText(w.opts.Title, c.Player)); err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, headerStart, headerEnd, w.cellStyle); err != nil {
		return err
	}

	for row := 0; row < card.Size; row++ {
		if err := w.file.SetRowHeight(sheet, firstCardRow+row, rowHeight(cellPixels)); err != nil {
			return err
		}
		for col := 0; col < card.Size; col++ {
			axis, err := excelize.CoordinatesToCellName(firstCardCol+col, firstCardRow+row)
			if err != nil {
				return err
			}
			cell := c.Cell(row, col)
			if err := w.file.SetCellStr(sheet, axis, cell.Text); err != nil {
				return err
			}
			style := w.cellStyle
			if cell.Free {
				style = w.freeStyle
			}
			if err := w.file.SetCellStyle(sheet, axis, axis, style); err != nil {
				return err
			}
		}
	}

	return nil
}

// HeaderText is the text shown above a player's card.
func HeaderText(title, player string) string {
	return fmt.Sprintf("%s - %s", title, player)
}

func (w *Writer) finalize() error {
	if len(w.sheets) == 0 {
		return bingoerrors.New(bingoerrors.ErrWorkbook, "workbook has no cards")
	}
	w.file.SetActiveSheet(0)
	return w.file.SetDocProps(&excelize.DocProperties{
		Creator:     w.opts.Creator,
		Title:       w.opts.Title,
		Identifier:  w.opts.RunID,
		Description: fmt.Sprintf("%d bingo cards", len(w.sheets)),
		Created:     time.Now().UTC().Format(time.RFC3339),
	})
}

// WriteTo streams the workbook to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if err := w.finalize(); err != nil {
		return 0, err
	}
	return w.file.WriteTo(out)
}

// Save writes the workbook to path while holding an exclusive lock on
// path + ".lock", so concurrent runs cannot interleave writes. The lock
// file is left in place.
func (w *Writer) Save(path string) error {
	if path == "" {
		path = DefaultOutputPath
	}
	if err := w.finalize(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return bingoerrors.WorkbookSaveFailed(path, err)
		}
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return bingoerrors.WorkbookSaveFailed(path, err)
	}
	if !locked {
		return bingoerrors.OutputLocked(path)
	}
	// The lock file stays behind; removing it would let a waiting run lock
	// an unlinked inode while another creates a fresh one.
	defer lock.Unlock()

	if err := w.file.SaveAs(path); err != nil {
		return bingoerrors.WorkbookSaveFailed(path, err)
	}
	return nil
}

// Close releases the workbook's resources.
func (w *Writer) Close() error {
	return w.file.Close()
}
