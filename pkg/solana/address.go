package solana

import "github.com/walletscope/walletscope/pkg/errors"

// base58Alphabet is the Bitcoin alphabet used for Solana addresses.
// It excludes 0, O, I, and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	minAddressLen = 32
	maxAddressLen = 44
)

var base58Set = func() [256]bool {
	var set [256]bool
	for _, c := range base58Alphabet {
		set[c] = true
	}
	return set
}()

// ValidateAddress checks that addr has the shape of a base58-encoded
// Solana public key. It validates the character set and length only; it
// does not decode the key or check that the account exists.
func ValidateAddress(addr string) error {
	if len(addr) < minAddressLen || len(addr) > maxAddressLen {
		return errors.New(errors.ErrCodeInvalidAddress, "address %q must be %d-%d characters", addr, minAddressLen, maxAddressLen)
	}
	for i := 0; i < len(addr); i++ {
		if !base58Set[addr[i]] {
			return errors.New(errors.ErrCodeInvalidAddress, "address %q contains non-base58 character %q", addr, addr[i])
		}
	}
	return nil
}
