// Package gameid generates match identifiers: UUIDs rendered as 26
// lower-case Crockford base32 characters.
package gameid

import (
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates IDs. With a nil reader IDs are time-ordered UUIDv7;
// with a reader they are random UUIDv4 drawn from it, which keeps tests
// reproducible.
type Generator struct {
	reader io.Reader
}

// NewGenerator creates a new generator with an optional random reader
func NewGenerator(reader io.Reader) *Generator {
	return &Generator{reader: reader}
}

// Generate creates a new time-ordered ID
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new ID using the generator's source
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.reader != nil {
		id, err = uuid.NewRandomFromReader(g.reader)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate match id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as a 26-character base32 string
func Encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}

// Parse decodes an ID back into its UUID
func Parse(id string) (uuid.UUID, error) {
	if err := Validate(id); err != nil {
		return uuid.Nil, err
	}

	raw, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode match id: %w", err)
	}
	return uuid.FromBytes(raw)
}

// Validate checks if an ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be exactly %d characters, got %d", Length, len(id))
	}

	for i := 0; i < len(id); i++ {
		if !isAlphabet(id[i]) {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}

	return nil
}

func isAlphabet(c byte) bool {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return true
		}
	}
	return false
}
