// Package iban converts Belgian national bank account numbers (NBAN) into
// validated IBANs and resolves the BIC of the operating bank from a static
// table published by the National Bank of Belgium.
package iban

import (
	"fmt"
	"strconv"
	"strings"
)

// nbanLength is the digit count of a Belgian NBAN: 3-digit bank code,
// 7-digit account number, 2-digit check number.
const nbanLength = 12

// belgianBICs is built once from the embedded table and never mutated.
var belgianBICs = buildBICTable()

func buildBICTable() map[string]string {
	m := make(map[string]string)
	for _, line := range strings.Split(bankCodes, "\n") {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			panic(fmt.Sprintf("iban: malformed bank code entry: %q", line))
		}
		bic := strings.ReplaceAll(parts[1], " ", "")
		if len(bic) != 8 && len(bic) != 11 {
			panic(fmt.Sprintf("iban: invalid BIC %q for bank code %s", bic, parts[0]))
		}
		m[parts[0]] = bic
	}
	return m
}

// MalformedAccountNumberError reports an input that is not a 12-digit
// Belgian NBAN once separators are stripped.
type MalformedAccountNumberError struct {
	Raw    string
	Reason string
}

func (e *MalformedAccountNumberError) Error() string {
	return fmt.Sprintf("malformed account number %q: %s", e.Raw, e.Reason)
}

// ChecksumMismatchError reports an NBAN whose final two digits do not match
// the mod-97 remainder of its first ten digits.
type ChecksumMismatchError struct {
	Expected int
	Found    string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("account number ends with %s (expected %02d)", e.Found, e.Expected)
}

// Normalize strips the separators commonly found in written Belgian account
// numbers and verifies the result is exactly 12 decimal digits.
func Normalize(raw string) (string, error) {
	nban := raw
	for _, sep := range []string{" ", "-", ".", "/"} {
		nban = strings.ReplaceAll(nban, sep, "")
	}
	if len(nban) != nbanLength {
		return "", &MalformedAccountNumberError{
			Raw:    raw,
			Reason: fmt.Sprintf("length of Belgian NBAN must be %d, got %d", nbanLength, len(nban)),
		}
	}
	for _, r := range nban {
		if r < '0' || r > '9' {
			return "", &MalformedAccountNumberError{
				Raw:    raw,
				Reason: fmt.Sprintf("unexpected character %q", r),
			}
		}
	}
	return nban, nil
}

// Derive computes the IBAN for a normalized 12-digit Belgian NBAN.
//
// The last two digits of the NBAN must equal the first ten digits mod 97,
// where a remainder of 0 maps to the sentinel 97. The IBAN check digits are
// then 98 minus (NBAN + "1114" + "00") mod 97, with "1114" being the numeric
// substitution for the letters "BE".
func Derive(nban string) (string, error) {
	if len(nban) != nbanLength {
		return "", &MalformedAccountNumberError{
			Raw:    nban,
			Reason: fmt.Sprintf("length of Belgian NBAN must be %d, got %d", nbanLength, len(nban)),
		}
	}
	head, err := strconv.ParseInt(nban[:10], 10, 64)
	if err != nil {
		return "", &MalformedAccountNumberError{Raw: nban, Reason: "not numeric"}
	}
	m := int(head % 97)
	expected := m
	if expected == 0 {
		expected = 97
	}
	end := nban[len(nban)-2:]
	if found, err := strconv.Atoi(end); err != nil || found != expected {
		return "", &ChecksumMismatchError{Expected: expected, Found: end}
	}
	// 12 NBAN digits + "1114" (BE) + "00" placeholder: 18 digits, fits int64.
	data, err := strconv.ParseInt(nban+"1114"+"00", 10, 64)
	if err != nil {
		return "", &MalformedAccountNumberError{Raw: nban, Reason: "not numeric"}
	}
	check := 98 - data%97
	return fmt.Sprintf("BE%02d%s", check, nban), nil
}

// BICFor returns the BIC of the bank operating the given Belgian IBAN,
// based on its 3-digit bank code. The second return value is false when the
// IBAN is not Belgian or the bank code has no published BIC; an unmapped
// code is a valid outcome, not an error.
func BICFor(iban string) (string, bool) {
	iban = strings.ReplaceAll(iban, " ", "")
	if !strings.HasPrefix(iban, "BE") || len(iban) < 7 {
		return "", false
	}
	bic, ok := belgianBICs[iban[4:7]]
	return bic, ok
}

// Convert turns a raw Belgian NBAN into its IBAN and, when the bank code is
// mapped, the BIC. It fails with the first error encountered; validation
// always runs before the BIC lookup.
func Convert(raw string) (iban, bic string, err error) {
	nban, err := Normalize(raw)
	if err != nil {
		return "", "", err
	}
	iban, err = Derive(nban)
	if err != nil {
		return "", "", err
	}
	bic, _ = BICFor(iban)
	return iban, bic, nil
}
