package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
	"github.com/weiawesome/wes-io-live/devid-service/internal/luhn"
	"github.com/weiawesome/wes-io-live/devid-service/internal/prefix"
)

// seqSource replays fixed draws, reduced modulo n.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func fixed(vals ...int) func() Source {
	return func() Source { return &seqSource{vals: vals} }
}

func assertValidIMEI(t *testing.T, id string) {
	t.Helper()
	require.Len(t, id, identifier.IMEILength)
	for _, c := range id {
		require.True(t, c >= '0' && c <= '9', "non-digit in %q", id)
	}
	assert.True(t, luhn.VerifyString(id, identifier.IMEILength), id)
}

func TestGenerateIMEI_AlwaysValid(t *testing.T) {
	categories := append(prefix.Manufacturers(), "", "nokia", "Samsung")
	for _, c := range categories {
		t.Run("category="+c, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				assertValidIMEI(t, GenerateIMEI(NewSource(), c))
			}
		})
	}
}

func TestGenerateIMEI_KnownManufacturerPinsTAC(t *testing.T) {
	for _, m := range prefix.Manufacturers() {
		tac, _ := prefix.TAC(m)
		id := GenerateIMEI(NewSource(), m)
		assert.True(t, strings.HasPrefix(id, tac), "%s -> %s", m, id)
	}
}

func TestGenerateIMEI_Deterministic(t *testing.T) {
	// Known manufacturer: no TAC draw, serial 123456.
	id := GenerateIMEI(&seqSource{vals: []int{1, 2, 3, 4, 5, 6}}, "samsung")
	assert.Equal(t, "353325091234561", id)

	// Unknown manufacturer: first draw picks pool entry 4.
	id = GenerateIMEI(&seqSource{vals: []int{4, 0, 0, 0, 0, 0, 0}}, "nokia")
	assert.Equal(t, "35904211000000", id[:14])
	assertValidIMEI(t, id)
}

func TestGenerateIMEI_FallbackCoversPool(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < prefix.TACPoolSize(); i++ {
		id := GenerateIMEI(&seqSource{vals: []int{i}}, "")
		seen[id[:identifier.TACLength]] = true
	}
	assert.Len(t, seen, prefix.TACPoolSize())
}

func TestGenerateBatch(t *testing.T) {
	assert.Empty(t, GenerateBatch(0))
	assert.NotNil(t, GenerateBatch(0))
	assert.Empty(t, GenerateBatch(-3))

	ids := GenerateBatch(5)
	require.Len(t, ids, 5)
	for _, id := range ids {
		assertValidIMEI(t, id)
	}
}

func TestIMEIGenerator(t *testing.T) {
	g := NewIMEIGenerator(WithSource(fixed(1, 2, 3, 4, 5, 6)))
	assert.Equal(t, "353325091234561", g.Generate("samsung"))

	ids := g.GenerateBatch(3)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assertValidIMEI(t, id)
	}
}

func TestIMEIGenerator_Validate(t *testing.T) {
	g := NewIMEIGenerator()

	ok, reason := g.Validate("490154203237518")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = g.Validate("490154203237519")
	assert.False(t, ok)
	assert.Equal(t, "luhn checksum mismatch", reason)

	ok, reason = g.Validate("123")
	assert.False(t, ok)
	assert.Equal(t, "expected 15 digits, got 3", reason)

	// Separators are filtered before the checksum.
	ok, _ = g.Validate("49-015420-3237518")
	assert.True(t, ok)
}

func TestGenerateICCID(t *testing.T) {
	id := GenerateICCID(&seqSource{vals: []int{7}}, "verizon")
	assert.Equal(t, "8914800777777777777", id)

	id = GenerateICCID(NewSource(), "unknown")
	require.Len(t, id, identifier.ICCIDLength)
	assert.True(t, strings.HasPrefix(id, prefix.DefaultICCIDPrefix))

	id = GenerateICCID(NewSource(), "")
	assert.True(t, strings.HasPrefix(id, prefix.DefaultICCIDPrefix))
}

func TestICCIDGenerator(t *testing.T) {
	g := NewICCIDGenerator()
	for _, p := range prefix.Providers() {
		id := g.Generate(p)
		ok, reason := g.Validate(id)
		assert.True(t, ok, reason)
		assert.True(t, strings.HasPrefix(id, prefix.ICCID(p)))
	}

	ids := g.GenerateBatch(4)
	assert.Len(t, ids, 4)

	ok, reason := g.Validate("89011001234")
	assert.False(t, ok)
	assert.Equal(t, "expected length 19, got 11", reason)

	ok, reason = g.Validate("890110012345678901X")
	assert.False(t, ok)
	assert.Equal(t, "character 'X' is not a digit", reason)

	ok, reason = g.Validate("890110012345678901é")
	assert.False(t, ok)
	assert.Equal(t, "character 'é' is not a digit", reason)
}

func TestBatchRoundTrip(t *testing.T) {
	ids := GenerateBatch(5)
	data := EncodeBatch(ids)
	assert.False(t, bytes.HasSuffix(data, []byte("\n")))
	assert.Equal(t, 4, bytes.Count(data, []byte("\n")))

	back, err := DecodeBatch(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ids, back)
}

func TestBatchRoundTrip_Empty(t *testing.T) {
	data := EncodeBatch(GenerateBatch(0))
	assert.Empty(t, data)

	back, err := DecodeBatch(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, back)
}
