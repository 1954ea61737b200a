// Package statetoken decodes FractalWonder share tokens into state documents.
//
// A share token is a versioned, URL-embeddable string of the form
//
//	v1:<urlsafe-base64-no-padding>
//
// whose payload is a raw-DEFLATE-compressed UTF-8 JSON document describing a
// saved view: viewport coordinates, palette, and render settings. Decode
// accepts either a bare token or a full viewer URL (only the fragment after
// "#" is used) and returns the parsed document.
//
// Decoding is a pure one-shot function: it holds no state between calls and
// is safe to invoke from any number of goroutines. Each pipeline stage fails
// with its own error code (INVALID_FORMAT, INVALID_ENCODING,
// DECOMPRESSION_FAILED, PARSE_FAILED) so callers can report precisely where
// a token went bad.
package statetoken

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"

	fwerrors "github.com/fractalwonder/fwdecode/pkg/errors"
)

// Marker is the mandatory version prefix for supported tokens. Any other
// prefix is a hard decode failure; there is no fallback to older formats.
const Marker = "v1:"

// Decode decodes a share URL or bare token into its state document.
//
// If input starts with an http:// or https:// scheme, only the URL fragment
// is decoded and every other URL component is ignored. Otherwise the entire
// input is treated as the token.
func Decode(input string) (*State, error) {
	token := input
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		u, err := url.Parse(input)
		if err != nil {
			return nil, fwerrors.Wrap(fwerrors.ErrCodeInvalidFormat, err, "cannot parse URL")
		}
		token = u.EscapedFragment()
	}

	if !strings.HasPrefix(token, Marker) {
		return nil, fwerrors.New(fwerrors.ErrCodeInvalidFormat, "invalid token: expected %q prefix", Marker)
	}
	payload := token[len(Marker):]

	compressed, err := decodePayload(payload)
	if err != nil {
		return nil, err
	}

	raw, err := decompress(compressed)
	if err != nil {
		return nil, err
	}

	return parseDocument(raw)
}

// decodePayload decodes the unpadded URL-safe base64 payload. Padding is
// re-derived from the encoded length: (4 - len mod 4) mod 4 pad characters,
// where a computed padding of 4 means none. A length of 1 mod 4 can never
// come from a valid encoder and fails here.
func decodePayload(payload string) ([]byte, error) {
	if pad := (4 - len(payload)%4) % 4; pad != 0 {
		payload += strings.Repeat("=", pad)
	}
	compressed, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fwerrors.Wrap(fwerrors.ErrCodeInvalidEncoding, err, "payload is not valid URL-safe base64")
	}
	return compressed, nil
}

// decompress inflates raw-DEFLATE bytes. The stream carries no zlib or gzip
// framing; the window is the format maximum of 32 KB.
func decompress(compressed []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()

	raw, err := io.ReadAll(fr)
	if err != nil {
		return nil, fwerrors.Wrap(fwerrors.ErrCodeDecompression, err, "payload is not valid raw-DEFLATE data")
	}
	return raw, nil
}

// parseDocument parses decompressed bytes as a UTF-8 JSON document. The
// document is returned verbatim whatever its root (object, array, or
// scalar): unknown fields pass through untouched and no schema validation
// happens here. The typed accessors on State report absence for anything
// that is not shaped the way the display layer expects.
func parseDocument(raw []byte) (*State, error) {
	if !utf8.Valid(raw) {
		return nil, fwerrors.New(fwerrors.ErrCodeParse, "decompressed payload is not valid UTF-8")
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fwerrors.Wrap(fwerrors.ErrCodeParse, err, "state document is not valid JSON")
	}
	return &State{doc: doc}, nil
}
