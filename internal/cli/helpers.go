package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Davincible/galois/internal/validation"
	"github.com/Davincible/galois/pkg/config"
	"github.com/Davincible/galois/pkg/gf"
	"golang.org/x/term"
)

// Field kind names accepted by the --field flag.
const (
	fieldPrime   = "prime"
	fieldChecked = "checked"
	fieldBinary  = "binary"
)

// defaultFieldSettings resolves the field kind and characteristic defaults
// from the user config, falling back to built-in defaults when no config
// is available.
func defaultFieldSettings() (string, uint16) {
	m, err := config.NewManager()
	if err != nil {
		d := config.Default().Defaults
		return d.Field, d.Characteristic
	}
	d := m.Get().Defaults
	return d.Field, d.Characteristic
}

// newArith constructs the requested field representation behind the shared
// arithmetic interface.
func newArith(kind string, characteristic uint16) (gf.Arith, error) {
	switch kind {
	case fieldBinary:
		return gf.NewBinaryField().Arith(), nil
	case fieldPrime:
		// PrimeField itself trusts the caller on primality; the CLI is
		// that caller, so it checks here before building tables.
		if !gf.IsPrime(characteristic) {
			return nil, fmt.Errorf("characteristic %d is not prime", characteristic)
		}
		return gf.NewPrimeField(characteristic), nil
	case fieldChecked:
		f, err := gf.NewCheckedPrimeField(characteristic)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown field %q (want %s, %s or %s)",
			kind, fieldPrime, fieldChecked, fieldBinary)
	}
}

// elementPair is one batch-mode operand line.
type elementPair struct {
	X uint16
	Y uint16
}

// readElementPairs reads "x y" operand pairs, one per line, until EOF.
// When stdin is an interactive terminal a short prompt is printed first.
func readElementPairs(r io.Reader, order uint32) ([]elementPair, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(os.Stderr, "Enter operand pairs, one \"x y\" per line (Ctrl-D to finish):")
	}

	var pairs []elementPair
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid operand line %q, expected \"x y\"", line)
		}

		x, err := validation.ParseElement(fields[0], order)
		if err != nil {
			return nil, err
		}
		y, err := validation.ParseElement(fields[1], order)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, elementPair{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read operands: %w", err)
	}

	return pairs, nil
}

// formatElement renders an element in the conventional notation for the
// field: hex for GF(2^8), decimal for prime fields.
func formatElement(kind string, v uint16) string {
	if kind == fieldBinary {
		return fmt.Sprintf("0x%02X", v)
	}
	return fmt.Sprintf("%d", v)
}
