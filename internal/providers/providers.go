package providers

import (
	"context"
	"errors"
)

// Request is one generative-model invocation: an inline image plus a
// text instruction, sent in a caller-chosen part order.
type Request struct {
	Model    string
	APIKey   string
	MimeType string
	Image    []byte
	Prompt   string

	// PromptFirst sends the instruction before the image. Some
	// argument-validation failures clear up when the order is swapped.
	PromptFirst bool
}

// Generator defines the interface for a vision-capable model provider.
type Generator interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
}

// Classified provider failures. Wrapped errors carry provider detail;
// check with errors.Is.
var (
	// ErrOverloaded is the service signaling it is temporarily unable
	// to serve the request due to load.
	ErrOverloaded = errors.New("provider temporarily overloaded")

	// ErrInvalidRequest is a client-error rejection of the request shape.
	ErrInvalidRequest = errors.New("provider rejected request as invalid")

	// ErrEmptyContent is a well-formed response with no extractable text.
	ErrEmptyContent = errors.New("provider returned no content")
)
