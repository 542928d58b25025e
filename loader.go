package feal4

import (
	"bufio"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
)

// ErrEmptyCorpus is returned when a pair file parses without I/O error
// but yields zero recognized pairs.
var ErrEmptyCorpus = errors.New("pair file contains no recognized pairs")

// loaderState tracks which line of a Plaintext=/Ciphertext= record the
// parser expects next.
type loaderState int

const (
	expectPlaintext loaderState = iota
	expectCiphertext
)

// LoadCorpus parses the pair-file text format from r: one logical
// record per pair, a "Plaintext=<16 hex>" line followed by a
// "Ciphertext=<16 hex>" line. Hex is case-insensitive, an optional
// space may follow the "=", blank lines between records are permitted,
// and any line not beginning with one of the two recognized prefixes is
// ignored. A Plaintext= line must precede the Ciphertext= line it pairs
// with.
func LoadCorpus(r io.Reader) (*Corpus, error) {
	scanner := bufio.NewScanner(r)

	var pairs []Pair
	state := expectPlaintext
	var pending cipher.Block
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(text, "Plaintext="):
			blk, err := parseHexBlock(text, "Plaintext=")
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			pending = blk
			state = expectCiphertext

		case strings.HasPrefix(text, "Ciphertext="):
			if state != expectCiphertext {
				return nil, errors.Errorf("line %d: Ciphertext= with no preceding Plaintext=", line)
			}
			blk, err := parseHexBlock(text, "Ciphertext=")
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			pairs = append(pairs, Pair{Plaintext: pending, Ciphertext: blk})
			state = expectPlaintext

		default:
			// blank or unrecognized lines are ignored
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading pair file")
	}

	if len(pairs) == 0 {
		return nil, ErrEmptyCorpus
	}

	return NewCorpus(pairs), nil
}

// parseHexBlock decodes the 16-hex-digit field of a "Key=<hex>" line
// (optional space after "=") into a Block: the first 8 digits are the
// left half, the next 8 the right half.
func parseHexBlock(line, prefix string) (cipher.Block, error) {
	field := strings.TrimSpace(line[len(prefix):])
	if len(field) != 16 {
		return cipher.Block{}, errors.Errorf("%s expected 16 hex digits, got %q", prefix, field)
	}

	raw, err := hex.DecodeString(strings.ToLower(field))
	if err != nil {
		return cipher.Block{}, errors.Wrapf(err, "%s invalid hex", prefix)
	}

	var b [8]byte
	copy(b[:], raw)
	return cipher.DecodeBlock(b), nil
}
