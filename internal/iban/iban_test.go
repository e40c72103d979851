package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_KnownAccounts(t *testing.T) {
	tests := []struct {
		name     string
		nban     string
		wantIBAN string
		wantBIC  string
	}{
		{"ING", "340-1549215-66", "BE07340154921566", "BBRUBEBB"},
		{"BNP Paribas Fortis", "001-6012719-56", "BE20001601271956", "GEBABEBB"},
		{"Belfius", "063-4975581-01", "BE43063497558101", "GKCCBEBB"},
		{"spaces as separators", "001 6012719 56", "BE20001601271956", "GEBABEBB"},
		{"no separators", "340154921566", "BE07340154921566", "BBRUBEBB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iban, bic, err := Convert(tt.nban)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIBAN, iban)
			assert.Equal(t, tt.wantBIC, bic)
		})
	}
}

func TestConvert_ChecksumMismatch(t *testing.T) {
	_, _, err := Convert("001-1148294-83")
	require.Error(t, err)

	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 84, mismatch.Expected)
	assert.Equal(t, "83", mismatch.Found)

	// The corrected check number passes.
	iban, bic, err := Convert("001-1148294-84")
	require.NoError(t, err)
	assert.Equal(t, "BE03001114829484", iban)
	assert.Equal(t, "GEBABEBB", bic)
}

func TestConvert_Deterministic(t *testing.T) {
	first, _, err := Convert("063-4975581-01")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _, err := Convert("063-4975581-01")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNormalize_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"too short", "340-1549215"},
		{"too long", "340-1549215-667"},
		{"empty", ""},
		{"letters", "340-15492x5-66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			var malformed *MalformedAccountNumberError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.raw, malformed.Raw)
		})
	}
}

func TestDerive_ZeroRemainderSentinel(t *testing.T) {
	// 0000000097 mod 97 == 0, so the check number must be the sentinel 97.
	iban, err := Derive("000000009797")
	require.NoError(t, err)
	assert.Equal(t, "BE54000000009797", iban)

	_, err = Derive("000000009700")
	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 97, mismatch.Expected)
	assert.Equal(t, "00", mismatch.Found)
}

func TestBICFor(t *testing.T) {
	bic, ok := BICFor("BE07340154921566")
	assert.True(t, ok)
	assert.Equal(t, "BBRUBEBB", bic)

	// Extended 11-character BIC.
	bic, ok = BICFor("BE00100000000000")
	assert.True(t, ok)
	assert.Equal(t, "NBBEBEBB203", bic)

	// Foreign IBAN: absence, not an error.
	_, ok = BICFor("FR7630006000011234567890189")
	assert.False(t, ok)

	// Belgian IBAN with an unmapped bank code.
	_, ok = BICFor("BE00102000000000")
	assert.False(t, ok)
}

func TestBICTable_WellFormed(t *testing.T) {
	require.NotEmpty(t, belgianBICs)
	for code, bic := range belgianBICs {
		assert.Len(t, code, 3)
		assert.NotContains(t, bic, " ")
		assert.Contains(t, []int{8, 11}, len(bic))
	}
}
