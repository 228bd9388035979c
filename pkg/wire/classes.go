package wire

import (
	"errors"
	"fmt"
)

// MaxEnumerateLength caps the program length accepted by the enumerators.
// 3^16 programs is already around 43 million.
const MaxEnumerateLength = 16

// ErrLength is returned for enumeration lengths outside [0, MaxEnumerateLength].
var ErrLength = errors.New("program length out of range")

// digits maps a base-3 digit to its operation.
var digits = [3]Op{Roll, BendUp, BendDown}

func checkLength(l int) error {
	if l < 0 || l > MaxEnumerateLength {
		return fmt.Errorf("%w: %d (max %d)", ErrLength, l, MaxEnumerateLength)
	}
	return nil
}

// Count returns the number of programs of length l, 3^l.
func Count(l int) int {
	n := 1
	for i := 0; i < l; i++ {
		n *= 3
	}
	return n
}

// ProgramAt decodes index as a program of length l. Digit j of index in
// base 3 (least significant first) selects op j: 0 = R, 1 = U, 2 = D.
func ProgramAt(index, l int) Program {
	p := make(Program, l)
	for j := 0; j < l; j++ {
		p[j] = digits[index%3]
		index /= 3
	}
	return p
}

// IndexOf is the inverse of ProgramAt.
func IndexOf(p Program) int {
	index := 0
	for j := len(p) - 1; j >= 0; j-- {
		index *= 3
		switch p[j] {
		case BendUp:
			index++
		case BendDown:
			index += 2
		}
	}
	return index
}

// orbit returns the indices of p under reversal and mirroring.
func orbit(p Program) [4]int {
	r := p.Reverse()
	return [4]int{
		IndexOf(p),
		IndexOf(r),
		IndexOf(p.Mirror()),
		IndexOf(r.Mirror()),
	}
}

// isRepresentative reports whether index is the smallest member of its orbit.
func isRepresentative(index, l int) bool {
	for _, o := range orbit(ProgramAt(index, l)) {
		if o < index {
			return false
		}
	}
	return true
}

// CountClasses returns the number of distinct programs of length l when a
// program, its reverse, its mirror and its mirrored reverse are considered
// the same wire.
func CountClasses(l int) (int, error) {
	if err := checkLength(l); err != nil {
		return 0, err
	}
	n := 0
	for i := 0; i < Count(l); i++ {
		if isRepresentative(i, l) {
			n++
		}
	}
	return n, nil
}

// Classes returns the smallest index representative of every class of
// programs of length l, in index order.
func Classes(l int) ([]Program, error) {
	if err := checkLength(l); err != nil {
		return nil, err
	}
	var reps []Program
	for i := 0; i < Count(l); i++ {
		if isRepresentative(i, l) {
			reps = append(reps, ProgramAt(i, l))
		}
	}
	return reps, nil
}
