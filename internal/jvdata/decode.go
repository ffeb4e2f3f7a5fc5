package jvdata

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Decode interprets buf[start:end] under the given kind. It is a pure
// function of its inputs.
//
// Text decodes through the Shift-JIS fallback chain (see decodeText) and is
// never nil; trailing ASCII and full-width pad spaces are stripped, so a
// blank slice decodes to "".
//
// Numeric kinds strip surrounding whitespace first. A blank slice decodes to
// nil (the uniform "not reported" value, stored as SQL NULL); an explicit
// zero-fill such as "000" decodes to zero. Anything else that fails to parse
// is a DecodeError. Real values carry one implied decimal digit: "1234"
// decodes to 123.4.
func Decode(buf []byte, start, end int, kind Kind) (any, error) {
	raw := buf[start:end]
	if kind == Text {
		return strings.TrimRight(decodeText(raw), " 　"), nil
	}

	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &DecodeError{Kind: kind, Value: s}
	}
	if kind == Real {
		return float64(n) / 10, nil
	}
	return n, nil
}

// decodeText converts a Shift-JIS byte slice to a UTF-8 string.
//
// Fallback chain: pure-ASCII slices are returned directly; otherwise the
// slice is decoded as Shift-JIS, and if that produces replacement runes the
// bytes are retried as EUC-JP (some historical feeds mislabel the encoding).
// If neither decodes cleanly the Shift-JIS result is kept with its
// replacement runes, so garbled characters stay visible instead of being
// dropped.
func decodeText(raw []byte) string {
	ascii := true
	for _, c := range raw {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return string(raw)
	}

	sjis, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err == nil && !hasReplacement(sjis) {
		return string(sjis)
	}
	eucjp, err := japanese.EUCJP.NewDecoder().Bytes(raw)
	if err == nil && !hasReplacement(eucjp) {
		return string(eucjp)
	}
	if sjis != nil {
		return string(sjis)
	}
	return string(raw)
}

func hasReplacement(b []byte) bool {
	return strings.ContainsRune(string(b), utf8.RuneError)
}
