// Package wire models the wire produced by the bending machine: the program
// of operations, the cursor walk that turns a program into a path, and the
// topology the machine mutates.
package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Op is a single machine operation.
type Op byte

// Operations, encoded by their program characters.
const (
	Roll     Op = 'R'
	BendUp   Op = 'U'
	BendDown Op = 'D'
)

// ErrInvalidOp is returned for program characters outside R, U and D.
var ErrInvalidOp = errors.New("invalid operation")

// SymbolError reports the first invalid character of a program string.
type SymbolError struct {
	Pos  int
	Char byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrInvalidOp, e.Char, e.Pos)
}

func (e *SymbolError) Unwrap() error {
	return ErrInvalidOp
}

// Valid reports whether op is one of Roll, BendUp or BendDown.
func (op Op) Valid() bool {
	return op == Roll || op == BendUp || op == BendDown
}

// String returns the program character of op.
func (op Op) String() string {
	return string(op)
}

// Mirror swaps the bend direction. Roll is unchanged.
func (op Op) Mirror() Op {
	switch op {
	case BendUp:
		return BendDown
	case BendDown:
		return BendUp
	default:
		return op
	}
}

// Program is an ordered list of operations. The first op is the oldest and
// lies furthest along the wire; the last op is the newest and sits at the
// hubs.
type Program []Op

// Parse converts a program string such as "RUD" into a Program.
func Parse(s string) (Program, error) {
	p := make(Program, len(s))
	for i := 0; i < len(s); i++ {
		op := Op(s[i])
		if !op.Valid() {
			return nil, &SymbolError{Pos: i, Char: s[i]}
		}
		p[i] = op
	}
	return p, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for constants and tests.
func MustParse(s string) Program {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the program in its character form.
func (p Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, op := range p {
		sb.WriteByte(byte(op))
	}
	return sb.String()
}

// Clone returns a copy of p that shares no storage with it.
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	return append(Program(nil), p...)
}

// Reverse returns p in reverse order.
func (p Program) Reverse() Program {
	r := make(Program, len(p))
	for i, op := range p {
		r[len(p)-1-i] = op
	}
	return r
}

// Mirror returns p with every bend direction swapped.
func (p Program) Mirror() Program {
	m := make(Program, len(p))
	for i, op := range p {
		m[i] = op.Mirror()
	}
	return m
}
