package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/ledongthuc/pdf"
)

type pdfTextExtractor struct {
	logger *logger.Logger
}

// NewPDFTextExtractor returns a [TextExtractor] for PDF documents.
func NewPDFTextExtractor(log *logger.Logger) TextExtractor {
	return &pdfTextExtractor{logger: log}
}

// ExtractText parses data in memory. The pdf reader panics on some corrupt
// inputs; such panics are reported as [ErrTextExtraction].
func (p *pdfTextExtractor) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "*pdfTextExtractor.ExtractText").
				Interface("panic", r).
				Msg("pdf reader panicked")
			text, err = "", fmt.Errorf("%w: %v", ErrTextExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextExtraction, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextExtraction, err)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextExtraction, err)
	}

	return strings.TrimSpace(buf.String()), nil
}
