package generator

import (
	"fmt"
	"unicode/utf8"

	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
	"github.com/weiawesome/wes-io-live/devid-service/internal/prefix"
)

// GenerateICCID builds a card identifier from a provider prefix and twelve
// random digits. No check digit is attached.
func GenerateICCID(src Source, provider string) string {
	return identifier.EncodeICCID(prefix.ICCID(provider), randomDigits(src, identifier.ICCIDSerialLen))
}

// ICCIDGenerator generates card identifiers.
type ICCIDGenerator struct {
	opts options
}

// NewICCIDGenerator creates a new ICCIDGenerator.
func NewICCIDGenerator(opts ...Option) *ICCIDGenerator {
	return &ICCIDGenerator{opts: buildOptions(opts)}
}

func (g *ICCIDGenerator) Generate(provider string) string {
	return GenerateICCID(g.opts.newSource(), provider)
}

func (g *ICCIDGenerator) GenerateBatch(count int) []string {
	src := g.opts.newSource()
	ids := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		ids = append(ids, GenerateICCID(src, ""))
	}
	return ids
}

// Validate is structural only.
func (g *ICCIDGenerator) Validate(id string) (bool, string) {
	if n := utf8.RuneCountInString(id); n != identifier.ICCIDLength {
		return false, fmt.Sprintf("expected length %d, got %d", identifier.ICCIDLength, n)
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false, fmt.Sprintf("character '%c' is not a digit", c)
		}
	}
	return true, ""
}
