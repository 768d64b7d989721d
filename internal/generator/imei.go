package generator

import (
	"fmt"

	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
	"github.com/weiawesome/wes-io-live/devid-service/internal/luhn"
	"github.com/weiawesome/wes-io-live/devid-service/internal/prefix"
)

// GenerateIMEI builds a checksum-valid device identifier. A known
// manufacturer pins the TAC; anything else draws one uniformly from the
// fallback pool.
func GenerateIMEI(src Source, manufacturer string) string {
	tac, ok := prefix.TAC(manufacturer)
	if !ok {
		tac = prefix.TACAt(src.IntN(prefix.TACPoolSize()))
	}
	serial := randomDigits(src, identifier.IMEISerialLen)
	return identifier.EncodeIMEI(tac, serial, luhn.CheckDigitString(tac+serial))
}

// GenerateBatch materializes count independent device identifiers drawn
// from a fresh source. Duplicates are possible.
func GenerateBatch(count int) []string {
	return generateIMEIBatch(NewSource(), count)
}

func generateIMEIBatch(src Source, count int) []string {
	ids := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		ids = append(ids, GenerateIMEI(src, ""))
	}
	return ids
}

// IMEIGenerator generates and validates device identifiers.
type IMEIGenerator struct {
	opts options
}

// NewIMEIGenerator creates a new IMEIGenerator.
func NewIMEIGenerator(opts ...Option) *IMEIGenerator {
	return &IMEIGenerator{opts: buildOptions(opts)}
}

func (g *IMEIGenerator) Generate(manufacturer string) string {
	return GenerateIMEI(g.opts.newSource(), manufacturer)
}

// GenerateBatch ignores manufacturers; every element uses the fallback pool.
func (g *IMEIGenerator) GenerateBatch(count int) []string {
	return generateIMEIBatch(g.opts.newSource(), count)
}

// Validate checks the Luhn sum over the digits of id. Separators are
// dropped first, so a formatted IMEI can validate without decoding.
func (g *IMEIGenerator) Validate(id string) (bool, string) {
	digits := luhn.Digits(id)
	if len(digits) != identifier.IMEILength {
		return false, fmt.Sprintf("expected %d digits, got %d", identifier.IMEILength, len(digits))
	}
	if !luhn.Valid(digits) {
		return false, "luhn checksum mismatch"
	}
	return true, ""
}
