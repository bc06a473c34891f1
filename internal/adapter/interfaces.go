// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps the outbound collaborators of the server: PDF text
// extraction and the AI completion service that turns a portfolio into
// interview questions.
//
// Two [QuestionSummarizer] implementations are shipped. The default one uses
// the OpenAI SDK ([NewOpenAISummarizer]); the other talks to any
// OpenAI-compatible chat completion endpoint over plain HTTP
// ([NewHTTPSummarizer]). [NewSummarizer] picks one from configuration.
//
// Error values defined in errors.go let callers use [errors.Is] without
// knowing which provider produced them.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-interview-prep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	// ExtractText returns the text of every page in order. Unreadable input
	// yields an error wrapping [ErrTextExtraction].
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// QuestionSummarizer asks an AI model for interview questions about a
// portfolio.
type QuestionSummarizer interface {
	// Summarize returns the generated question/answer pairs. A missing or
	// unparseable answer yields [ErrEmptyAIResponse] or
	// [ErrMalformedAIResponse].
	Summarize(ctx context.Context, content string) ([]models.GeneratedQuestion, error)
}
