// Package schemastore fingerprints JSON Schema documents so clients can cache them.
package schemastore

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// NormalizeJSON re-encodes data with sorted object keys and no insignificant whitespace, so
// two equivalent documents produce the same bytes. Numbers keep their original text.
func NormalizeJSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func HexEncodedSHA512(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// ETag returns a strong entity tag for a schema document.
func ETag(schema []byte) (string, error) {
	n, err := NormalizeJSON(schema)
	if err != nil {
		return "", err
	}
	return `"` + HexEncodedSHA512(n)[:32] + `"`, nil
}
