package document

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/rope"
)

// DocumentInfo stores the state of the file a document represents.
type DocumentInfo struct {
	// ReadOnly blocks all editing events when set.
	ReadOnly bool
	// EOL records that the file's last line lacked a trailing
	// newline, so saves round-trip byte for byte.
	EOL bool
	// LoadedTo is the watermark up to which the line cache and the
	// width maps are valid.
	LoadedTo int
	// Modified reports unsaved changes.
	Modified bool
}

// New creates an empty document with no file name.
func New(size Size) *Document {
	d := &Document{
		File:     rope.FromString("\n"),
		Lines:    []string{""},
		DblMap:   NewCharMap(),
		TabMap:   NewCharMap(),
		Size:     size,
		TabWidth: 4,
		Info: DocumentInfo{
			LoadedTo: 1,
		},
	}
	d.UndoMgmt = NewUndoMgmt(d.takeSnapshot())
	return d
}

// Open opens a document from a file path. Only line-count and EOL
// metadata is computed up front; call LoadTo before reading lines.
func Open(size Size, fileName string) (*Document, error) {
	fullPath, err := filepath.Abs(fileName)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", fileName, err)
	}
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", fileName, err)
	}
	defer f.Close()
	file, err := rope.FromReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	d := &Document{
		FileName: fullPath,
		File:     file,
		DblMap:   NewCharMap(),
		TabMap:   NewCharMap(),
		Size:     size,
		TabWidth: 4,
		Info: DocumentInfo{
			EOL: file.Line(file.LenLines()-1) != "",
		},
	}
	d.UndoMgmt = NewUndoMgmt(d.takeSnapshot())
	logger.Info("opened document", "file", fullPath, "lines", d.LenLines())
	return d, nil
}

// Save writes the document back to the file it was opened from and
// marks the undo history as saved.
func (d *Document) Save() error {
	if d.Info.ReadOnly {
		return ErrReadOnlyFile
	}
	if d.FileName == "" {
		return ErrNoFileName
	}
	if err := d.write(d.FileName); err != nil {
		logger.Error("save failed", "file", d.FileName, "error", err)
		return err
	}
	d.UndoMgmt.DiskWrite(d.takeSnapshot())
	d.Info.Modified = false
	logger.Info("saved document", "file", d.FileName)
	return nil
}

// SaveAs writes the document to another path, leaving the originating
// file name and the modified flag untouched.
func (d *Document) SaveAs(fileName string) error {
	if d.Info.ReadOnly {
		return ErrReadOnlyFile
	}
	if err := d.write(fileName); err != nil {
		logger.Error("save as failed", "file", fileName, "error", err)
		return err
	}
	logger.Info("saved document", "file", fileName)
	return nil
}

func (d *Document) write(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fileName, err)
	}
	w := bufio.NewWriter(f)
	if _, err := d.File.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	return nil
}

// LoadTo materializes lines into the cache and the width maps up to
// a line index. Already loaded lines are left alone, so calling it
// repeatedly is cheap.
func (d *Document) LoadTo(to int) {
	if lenLines := d.File.LenLines(); to >= lenLines {
		to = lenLines
	}
	if to <= d.Info.LoadedTo {
		return
	}
	for i := d.Info.LoadedTo; i < to; i++ {
		line := d.File.Line(i)
		dblMap, tabMap := FormMap(line, d.TabWidth)
		d.DblMap.Insert(i, dblMap)
		d.TabMap.Insert(i, tabMap)
		d.Lines = append(d.Lines, strings.TrimRight(line, "\n\r"))
	}
	d.Info.LoadedTo = to
}
