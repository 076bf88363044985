package parser

import "strings"

// Flags tune how a statement is parsed.
type Flags uint8

const (
	// FlagAllowTail lets a trailing expression without `;` end the
	// enclosing block as its value.
	FlagAllowTail Flags = 1 << iota
	// FlagDeferPayload marks the statement following `defer`.
	FlagDeferPayload
)

// Has reports whether f includes all bits in mask.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

func (f Flags) Set(mask Flags) Flags {
	return f | mask
}

func (f Flags) Clear(mask Flags) Flags {
	return f &^ mask
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	if f.Has(FlagAllowTail) {
		parts = append(parts, "AllowTail")
	}
	if f.Has(FlagDeferPayload) {
		parts = append(parts, "DeferPayload")
	}
	return strings.Join(parts, "|")
}
