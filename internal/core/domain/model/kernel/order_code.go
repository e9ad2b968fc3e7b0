package kernel

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"marketplace/internal/pkg/errs"
)

const (
	// orderCodePrefix precedes every externally visible order code.
	orderCodePrefix = "ST-"

	// orderCodeLength is the number of random symbols after the prefix.
	orderCodeLength = 12

	// orderCodeAlphabet is the 62-symbol alphabet codes are drawn from.
	orderCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// ErrOrderCodeIsNotConstructed indicates a zero-value OrderCode that was not
// created through NewOrderCode or OrderCodeFromString.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderCode must be created via NewOrderCode or OrderCodeFromString")

// OrderCode is the human-shareable order identifier: "ST-" followed by
// 12 symbols from [0-9A-Za-z]. Uniqueness is by convention, guarded by the
// unique index on the orders table rather than by a pre-insert lookup.
type OrderCode struct {
	value string
}

// NewOrderCode draws a fresh code from the given entropy source. Passing the
// source explicitly keeps the function pure; tests substitute a deterministic
// reader, production wiring passes crypto/rand.Reader.
func NewOrderCode(entropy io.Reader) (OrderCode, error) {
	if entropy == nil {
		entropy = rand.Reader
	}

	var sb strings.Builder
	sb.WriteString(orderCodePrefix)

	// Rejection sampling keeps the draw uniform over the 62-symbol alphabet:
	// 248 is the largest multiple of 62 that fits in a byte.
	const limit = byte(len(orderCodeAlphabet) * (256 / len(orderCodeAlphabet)))
	buf := make([]byte, 1)
	for sb.Len() < len(orderCodePrefix)+orderCodeLength {
		if _, err := io.ReadFull(entropy, buf); err != nil {
			return OrderCode{}, fmt.Errorf("read entropy: %w", err)
		}
		if buf[0] >= limit {
			continue
		}
		sb.WriteByte(orderCodeAlphabet[int(buf[0])%len(orderCodeAlphabet)])
	}

	return OrderCode{value: sb.String()}, nil
}

// OrderCodeFromString reconstructs a code from its textual form, typically
// when loading orders from persistence or parsing a path parameter.
func OrderCodeFromString(s string) (OrderCode, error) {
	if !strings.HasPrefix(s, orderCodePrefix) {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause("orderCode",
			fmt.Errorf("%q does not start with %q", s, orderCodePrefix))
	}

	suffix := strings.TrimPrefix(s, orderCodePrefix)
	if len(suffix) != orderCodeLength {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause("orderCode",
			fmt.Errorf("%q must have %d symbols after the prefix", s, orderCodeLength))
	}
	for _, r := range suffix {
		if !strings.ContainsRune(orderCodeAlphabet, r) {
			return OrderCode{}, errs.NewValueIsInvalidErrorWithCause("orderCode",
				fmt.Errorf("%q contains symbol %q outside [0-9A-Za-z]", s, r))
		}
	}

	return OrderCode{value: s}, nil
}

// String returns the full code including the "ST-" prefix.
func (c OrderCode) String() string {
	return c.value
}

// IsEqual reports whether two codes are the same value.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate returns ErrOrderCodeIsNotConstructed for the zero value.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return ErrOrderCodeIsNotConstructed
	}
	return nil
}
