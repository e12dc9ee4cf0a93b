package event

import (
	"fmt"

	"github.com/stellar/go/strkey"
)

// ParseContractID validates a strkey-encoded contract address ("C..." form)
// and returns it in canonical form.
func ParseContractID(s string) (string, error) {
	if _, err := strkey.Decode(strkey.VersionByteContract, s); err != nil {
		return "", fmt.Errorf("invalid contract id %q: %w", s, err)
	}
	return s, nil
}

// MustParseContractID is like ParseContractID but panics on error.
func MustParseContractID(s string) string {
	id, err := ParseContractID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsContractID reports whether s is a well-formed strkey contract address.
func IsContractID(s string) bool {
	_, err := strkey.Decode(strkey.VersionByteContract, s)
	return err == nil
}
