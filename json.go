package main

import (
	"encoding/json"
	"fmt"
	"io"
)

const maxBodyBytes = 1 << 16

// DecodeJSON reads one JSON value of type T. An empty body yields the zero value.
func DecodeJSON[T any](body io.Reader) (T, error) {
	var parsed T
	err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(&parsed)
	if err == io.EOF {
		return parsed, nil
	}
	if err != nil {
		return parsed, fmt.Errorf("decode body: %w", err)
	}
	return parsed, nil
}
