// Package extract pulls study text out of uploaded documents.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

const maxDocumentBytes = 10 << 20

type Kind string

const (
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindCSV      Kind = "csv"
	KindJSON     Kind = "json"
	KindPDF      Kind = "pdf"
	KindWord     Kind = "word"
	KindSlides   Kind = "slides"
)

func KindOf(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return KindText, true
	case ".md", ".markdown":
		return KindMarkdown, true
	case ".csv":
		return KindCSV, true
	case ".json":
		return KindJSON, true
	case ".pdf":
		return KindPDF, true
	case ".doc", ".docx":
		return KindWord, true
	case ".ppt", ".pptx":
		return KindSlides, true
	default:
		return "", false
	}
}

// FromFile returns the text of a document. Word and slide formats are
// recognised but not parsed yet.
func FromFile(path string) (string, error) {
	kind, ok := KindOf(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(path))
	}

	switch kind {
	case KindText, KindMarkdown, KindCSV, KindJSON:
		return readText(path)
	case KindPDF:
		return readPDF(path)
	default:
		return "", fmt.Errorf("%w: %s extraction is not available", ErrUnsupportedFileType, kind)
	}
}

func checkSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > maxDocumentBytes {
		return fmt.Errorf("document %q is larger than %d bytes", path, maxDocumentBytes)
	}

	return nil
}

func readPDF(path string) (text string, err error) {
	if err := checkSize(path); err != nil {
		return "", err
	}

	// The parser panics on some malformed files instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("parse pdf %q: %v", path, r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf %q text: %w", path, err)
	}

	data, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf %q text: %w", path, err)
	}

	text = strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("document %q has no extractable text", path)
	}

	return text, nil
}

func readText(path string) (string, error) {
	if err := checkSize(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %q is not valid UTF-8", path)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("document %q is empty", path)
	}

	return text, nil
}
