package domain

import "errors"

var (
	// ErrPageNotFound is returned when a generated page does not exist yet
	ErrPageNotFound = errors.New("generated page not found")

	// ErrInvalidProduct is returned when product input cannot be decoded
	ErrInvalidProduct = errors.New("invalid product input")

	// ErrNoProducts is returned when the workflow input contains no products
	ErrNoProducts = errors.New("no products in input")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrOllamaAPIFailure is returned when the Ollama API request fails
	ErrOllamaAPIFailure = errors.New("ollama API request failed")

	// ErrGenerationFailed is returned when text generation produced no usable output
	ErrGenerationFailed = errors.New("text generation failed")
)
