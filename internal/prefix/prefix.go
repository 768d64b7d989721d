// Package prefix holds the fixed manufacturer and provider prefix tables.
package prefix

import "sort"

// DefaultICCIDPrefix is used for providers missing from the card table.
const DefaultICCIDPrefix = "8901100"

var manufacturerTACs = map[string]string{
	"samsung": "35332509",
	"apple":   "35391110",
	"google":  "35455506",
	"xiaomi":  "86794003",
}

// tacPool is the fallback draw set. 35904211 has no manufacturer key.
var tacPool = [...]string{
	"35332509",
	"35391110",
	"35455506",
	"86794003",
	"35904211",
}

var providerPrefixes = map[string]string{
	"verizon": "8914800",
	"att":     "8901410",
	"tmobile": "8901260",
}

// TAC returns the type allocation code for a manufacturer. Keys are
// case-sensitive.
func TAC(manufacturer string) (string, bool) {
	tac, ok := manufacturerTACs[manufacturer]
	return tac, ok
}

// TACPoolSize is the number of entries a fallback draw chooses among.
func TACPoolSize() int {
	return len(tacPool)
}

// TACAt returns the i-th fallback entry. i must be in [0, TACPoolSize()).
func TACAt(i int) string {
	return tacPool[i]
}

// Manufacturers lists the known manufacturer keys in sorted order.
func Manufacturers() []string {
	return sortedKeys(manufacturerTACs)
}

// ICCID returns the provider prefix for a card identifier, or
// DefaultICCIDPrefix when the provider is unknown.
func ICCID(provider string) string {
	if p, ok := providerPrefixes[provider]; ok {
		return p
	}
	return DefaultICCIDPrefix
}

// Provider reverse-looks-up the provider owning an ICCID prefix.
func Provider(iccidPrefix string) (string, bool) {
	for name, p := range providerPrefixes {
		if p == iccidPrefix {
			return name, true
		}
	}
	return "", false
}

// Providers lists the known provider keys in sorted order.
func Providers() []string {
	return sortedKeys(providerPrefixes)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
