package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseElement parses a field element given as decimal or 0x-prefixed hex
// and checks it against the field order.
func ParseElement(input string, order uint32) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("element cannot be empty")
	}

	v, err := strconv.ParseUint(input, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid element %q: %w", input, err)
	}

	if uint32(v) >= order {
		return 0, fmt.Errorf("element %d out of field range [0, %d)", v, order)
	}

	return uint16(v), nil
}

// ParseExponent parses a non-negative exponent given as decimal or
// 0x-prefixed hex.
func ParseExponent(input string) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("exponent cannot be empty")
	}

	v, err := strconv.ParseUint(input, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid exponent %q: %w", input, err)
	}

	return uint16(v), nil
}

// ParseCharacteristic parses a prime-field characteristic. Primality is
// checked by the field constructors, not here; this only enforces the
// representable range.
func ParseCharacteristic(input string) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("characteristic cannot be empty")
	}

	v, err := strconv.ParseUint(input, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid characteristic %q: %w", input, err)
	}

	if v < 2 {
		return 0, fmt.Errorf("characteristic must be at least 2, got %d", v)
	}
	if v > 65535 {
		return 0, fmt.Errorf("characteristic must fit in 16 bits, got %d", v)
	}

	return uint16(v), nil
}
