// Package identifier models the field layout of device (IMEI), subscriber
// (IMSI) and card (ICCID) identifiers.
//
// Decoding slices character (rune) positions of the raw string and does not
// require the string to be all digits. The IMEI checksum, on the other hand, is computed
// over the digits of the string only. The two paths are kept apart on
// purpose: a string with embedded separators can decode into odd-looking
// fields while its checksum is judged on the filtered digits.
package identifier

import (
	"strconv"
	"unicode/utf8"

	"github.com/weiawesome/wes-io-live/devid-service/internal/luhn"
	"github.com/weiawesome/wes-io-live/devid-service/internal/prefix"
)

// Kind names an identifier family.
type Kind string

const (
	KindIMEI  Kind = "imei"
	KindIMSI  Kind = "imsi"
	KindICCID Kind = "iccid"
)

// Field widths.
const (
	IMEILength    = 15
	TACLength     = 8
	IMEISerialLen = 6

	IMSIMinLength = 5
	MCCLength     = 3
	MNCLength     = 2

	ICCIDPrefixLen = 7
	ICCIDSerialLen = 12
	ICCIDLength    = ICCIDPrefixLen + ICCIDSerialLen
	ICCIDMaxLength = ICCIDLength + 1
)

// IMEIView is a decoded device identifier.
type IMEIView struct {
	IMEI          string `json:"imei"`
	TAC           string `json:"tac"`
	ReportingBody string `json:"reporting_body"`
	DeviceType    string `json:"device_type"`
	SerialNumber  string `json:"serial_number"`
	CheckDigit    string `json:"check_digit"`
	// AllDigits is false when any position holds a non-digit character.
	AllDigits     bool `json:"all_digits"`
	ChecksumValid bool `json:"checksum_valid"`
}

// IMSIView is a decoded subscriber identifier.
type IMSIView struct {
	IMSI string `json:"imsi"`
	MCC  string `json:"mcc"`
	MNC  string `json:"mnc"`
	MSIN string `json:"msin"`
}

// ICCIDView is a decoded card identifier.
type ICCIDView struct {
	ICCID          string `json:"iccid"`
	ProviderPrefix string `json:"provider_prefix"`
	Provider       string `json:"provider,omitempty"`
	SerialNumber   string `json:"serial_number"`
	// Trailing holds the optional 20th character; it is never validated.
	Trailing string `json:"trailing,omitempty"`
}

// DecodeIMEI splits a 15-character string into its fields and verifies the
// Luhn checksum over its digits.
func DecodeIMEI(s string) (IMEIView, error) {
	r := []rune(s)
	if len(r) != IMEILength {
		return IMEIView{}, &LengthError{Kind: KindIMEI, Want: IMEILength, Got: len(r)}
	}

	tac := r[0:TACLength]
	return IMEIView{
		IMEI:          s,
		TAC:           string(tac),
		ReportingBody: string(tac[0:2]),
		DeviceType:    string(tac[2:TACLength]),
		SerialNumber:  string(r[TACLength : TACLength+IMEISerialLen]),
		CheckDigit:    string(r[IMEILength-1:]),
		AllDigits:     allDigits(s),
		ChecksumValid: luhn.VerifyString(s, IMEILength),
	}, nil
}

// EncodeIMEI assembles a device identifier from its fields.
func EncodeIMEI(tac, serial string, check int) string {
	return tac + serial + strconv.Itoa(check)
}

// DecodeIMSI splits a subscriber identifier into MCC, MNC and MSIN. The
// MSIN may be empty.
func DecodeIMSI(s string) (IMSIView, error) {
	if n := utf8.RuneCountInString(s); n < IMSIMinLength {
		return IMSIView{}, &LengthError{Kind: KindIMSI, Want: IMSIMinLength, Got: n, AtLeast: true}
	}
	r := []rune(s)
	return IMSIView{
		IMSI: s,
		MCC:  string(r[0:MCCLength]),
		MNC:  string(r[MCCLength : MCCLength+MNCLength]),
		MSIN: string(r[MCCLength+MNCLength:]),
	}, nil
}

// DecodeICCID splits a 19 or 20 character card identifier.
func DecodeICCID(s string) (ICCIDView, error) {
	r := []rune(s)
	if len(r) != ICCIDLength && len(r) != ICCIDMaxLength {
		return ICCIDView{}, &LengthError{Kind: KindICCID, Want: ICCIDLength, Max: ICCIDMaxLength, Got: len(r)}
	}

	p := string(r[0:ICCIDPrefixLen])
	v := ICCIDView{
		ICCID:          s,
		ProviderPrefix: p,
		SerialNumber:   string(r[ICCIDPrefixLen:ICCIDLength]),
		Trailing:       string(r[ICCIDLength:]),
	}
	if name, ok := prefix.Provider(p); ok {
		v.Provider = name
	}
	return v, nil
}

// EncodeICCID assembles a card identifier from its fields.
func EncodeICCID(providerPrefix, serial string) string {
	return providerPrefix + serial
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
