package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFTextExtractor_RejectsNonPDF(t *testing.T) {
	extractor := NewPDFTextExtractor(logger.Nop())

	inputs := map[string][]byte{
		"empty":     {},
		"plain":     []byte("this is not a pdf document"),
		"truncated": []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog"),
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			text, err := extractor.ExtractText(context.Background(), data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTextExtraction)
			assert.Empty(t, text)
		})
	}
}
