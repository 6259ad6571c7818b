package config

import (
	"bytes"
	"regexp"

	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Matches either a well-formed XML entity or a lone ampersand. The lone
// ampersand is the only case that gets rewritten, which makes the pass
// idempotent.
var entityOrAmp = regexp.MustCompile(`&(amp;|lt;|gt;|quot;|apos;|#[0-9]+;|#[xX][0-9a-fA-F]+;)?`)

// RepairEncoding applies a best-effort transform to config bytes that failed
// to parse. It normalizes the byte-level problems seen in real server files:
// a UTF-8 BOM, UTF-16 content written by Windows editors, stray bytes before
// the XML declaration, and bare ampersands inside attribute values.
//
// The transform is idempotent and callers only apply it after an initial
// parse failure, never to content that parsed cleanly.
func RepairEncoding(raw []byte) []byte {
	data := raw

	switch {
	case bytes.HasPrefix(data, utf8BOM):
		data = data[len(utf8BOM):]
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}), bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := decoder.Bytes(data); err == nil {
			data = decoded
		}
	}

	if i := bytes.Index(data, []byte("<?xml")); i > 0 {
		data = data[i:]
	}

	return entityOrAmp.ReplaceAllFunc(data, func(m []byte) []byte {
		if len(m) == 1 {
			return []byte("&amp;")
		}
		return m
	})
}
