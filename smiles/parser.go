// Package smiles: the parser itself. One forward pass over the input builds
// the molecule, then two fix-up passes fill implicit hydrogens and normalize
// tetrahedral marks against the final neighbor order.
package smiles

import (
	"fmt"

	"github.com/BerendHuisman/molkit/molecule"
)

// Parse converts a SMILES string into a molecule with rings perceived and
// parity marks normalized to the molecule.Parity convention (implicit
// hydrogen last in the neighbor order).
func Parse(s string) (*molecule.Molecule, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}
	p := &parser{
		in:    s,
		mol:   molecule.New(),
		prev:  -1,
		rings: make(map[int]*ringOpen),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	p.fillImplicitHydrogens()
	p.normalizeParity()
	p.mol.PerceiveRings()

	return p.mol, nil
}

// ringOpen records one half of a ring-closure pair.
type ringOpen struct {
	atom  int
	order molecule.BondOrder // 0 = unspecified at open time
	slot  int                // reserved index in written[atom]
}

// parser holds the single-pass state. written mirrors, per atom, the
// neighbor order exactly as the input spells it (preceding atom, bracket
// hydrogen, ring digits, branches); parity normalization replays it against
// the molecule's bond-insertion order.
type parser struct {
	in  string
	pos int
	mol *molecule.Molecule

	prev    int                // most recent atom, -1 after start or '.'
	pending molecule.BondOrder // explicit bond awaiting its second atom, 0 = none
	stack   []int              // '(' saves prev here
	rings   map[int]*ringOpen

	written  [][]int           // per-atom written neighbor order
	rawMarks []molecule.Parity // per-atom parity as written, pre-normalization
	bracket  []bool            // per-atom: bracket atoms skip implicit-H filling
}

// run is the main token loop.
func (p *parser) run() error {
	var c byte
	var err error
	for p.pos < len(p.in) {
		c = p.in[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.syntaxErr("branch before any atom")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return fmt.Errorf("smiles: pos %d: stray ')': %w", p.pos, ErrUnclosedBranch)
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '-' || c == '=' || c == '#' || c == ':' || c == '/' || c == '\\':
			if p.pending != 0 {
				return p.syntaxErr("two bond symbols in a row")
			}
			p.pending = bondFor(c)
			p.pos++
		case c == '.':
			if p.pending != 0 {
				return p.syntaxErr("bond before '.'")
			}
			p.prev = -1
			p.pos++
		case c >= '0' && c <= '9':
			if err = p.ringBond(int(c - '0')); err != nil {
				return err
			}
			p.pos++
		case c == '%':
			if p.pos+2 >= len(p.in) || !isDigit(p.in[p.pos+1]) || !isDigit(p.in[p.pos+2]) {
				return p.syntaxErr("'%' needs two digits")
			}
			if err = p.ringBond(int(p.in[p.pos+1]-'0')*10 + int(p.in[p.pos+2]-'0')); err != nil {
				return err
			}
			p.pos += 3
		case c == '[':
			if err = p.parseBracket(); err != nil {
				return err
			}
		default:
			if err = p.parseOrganic(); err != nil {
				return err
			}
		}
	}

	// End-of-input consistency
	if len(p.stack) != 0 {
		return fmt.Errorf("smiles: %d unclosed '(': %w", len(p.stack), ErrUnclosedBranch)
	}
	if len(p.rings) != 0 {
		return fmt.Errorf("smiles: %d dangling ring digits: %w", len(p.rings), ErrUnclosedRing)
	}
	if p.pending != 0 {
		return p.syntaxErr("trailing bond symbol")
	}

	return nil
}

// addAtom registers a parsed atom, bonds it to the preceding atom, and seeds
// its written neighbor order.
func (p *parser) addAtom(a molecule.Atom, fromBracket bool, bracketH int, mark molecule.Parity) error {
	a.Hydrogens = bracketH
	idx := p.mol.AddAtom(a)
	p.written = append(p.written, nil)
	p.rawMarks = append(p.rawMarks, mark)
	p.bracket = append(p.bracket, fromBracket)

	if p.prev >= 0 {
		ord := p.pending
		if ord == 0 {
			ord = p.defaultBond(p.prev, idx)
		}
		if _, err := p.mol.AddBond(p.prev, idx, ord); err != nil {
			return fmt.Errorf("smiles: pos %d: %w", p.pos, err)
		}
		p.written[p.prev] = append(p.written[p.prev], idx)
		p.written[idx] = append(p.written[idx], p.prev)
	} else if p.pending != 0 {
		return p.syntaxErr("bond with no preceding atom")
	}

	// A bracket hydrogen occupies the written position where it appears:
	// right after the preceding atom, before any ring digits or branches.
	if bracketH > 0 {
		p.written[idx] = append(p.written[idx], hPlaceholder)
	}

	p.pending = 0
	p.prev = idx

	return nil
}

// ringBond opens or closes ring number n on the current atom.
func (p *parser) ringBond(n int) error {
	if p.prev < 0 {
		return p.syntaxErr("ring digit before any atom")
	}
	open, ok := p.rings[n]
	if !ok {
		p.rings[n] = &ringOpen{atom: p.prev, order: p.pending, slot: len(p.written[p.prev])}
		p.written[p.prev] = append(p.written[p.prev], ringPlaceholder)
		p.pending = 0

		return nil
	}

	// Closing half: reconcile the two bond annotations.
	delete(p.rings, n)
	ord := open.order
	switch {
	case ord == 0:
		ord = p.pending
	case p.pending != 0 && p.pending != ord:
		return p.syntaxErr("conflicting ring-bond orders")
	}
	if ord == 0 {
		ord = p.defaultBond(open.atom, p.prev)
	}
	if _, err := p.mol.AddBond(open.atom, p.prev, ord); err != nil {
		return fmt.Errorf("smiles: pos %d: %w", p.pos, err)
	}
	p.written[open.atom][open.slot] = p.prev
	p.written[p.prev] = append(p.written[p.prev], open.atom)
	p.pending = 0

	return nil
}

// defaultBond picks the implied order between two atoms: aromatic when both
// ends are aromatic, single otherwise.
func (p *parser) defaultBond(a, b int) molecule.BondOrder {
	if p.mol.Atom(a).Aromatic && p.mol.Atom(b).Aromatic {
		return molecule.Aromatic
	}

	return molecule.Single
}

// parseOrganic consumes one bare (organic-subset or wildcard) atom.
func (p *parser) parseOrganic() error {
	c := p.in[p.pos]

	// Wildcard
	if c == '*' {
		p.pos++

		return p.addAtom(molecule.Atom{AtomicNum: 0}, false, 0, molecule.ParityNone)
	}

	// Aromatic subset
	if c == 'b' || c == 'c' || c == 'n' || c == 'o' || c == 'p' || c == 's' {
		z, err := molecule.AtomicNumber(string(c - 'a' + 'A'))
		if err != nil {
			return fmt.Errorf("smiles: pos %d: %w", p.pos, err)
		}
		p.pos++

		return p.addAtom(molecule.Atom{AtomicNum: z, Aromatic: true}, false, 0, molecule.ParityNone)
	}

	// Two-letter halogens, then single letters
	sym := ""
	switch {
	case c == 'C' && p.pos+1 < len(p.in) && p.in[p.pos+1] == 'l':
		sym = "Cl"
	case c == 'B' && p.pos+1 < len(p.in) && p.in[p.pos+1] == 'r':
		sym = "Br"
	case c == 'B' || c == 'C' || c == 'N' || c == 'O' || c == 'P' || c == 'S' || c == 'F' || c == 'I':
		sym = string(c)
	default:
		return p.syntaxErr("unexpected character")
	}
	z, err := molecule.AtomicNumber(sym)
	if err != nil {
		return fmt.Errorf("smiles: pos %d: %w", p.pos, err)
	}
	p.pos += len(sym)

	return p.addAtom(molecule.Atom{AtomicNum: z}, false, 0, molecule.ParityNone)
}

// parseBracket consumes one "[...]" atom.
func (p *parser) parseBracket() error {
	p.pos++ // consume '['

	// 1. Isotope
	isotope := 0
	for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
		isotope = isotope*10 + int(p.in[p.pos]-'0')
		p.pos++
	}

	// 2. Element symbol (two-letter forms take precedence), or wildcard
	if p.pos >= len(p.in) {
		return p.syntaxErr("unterminated bracket atom")
	}
	var z int
	var aromatic bool
	switch c := p.in[p.pos]; {
	case c == '*':
		p.pos++
	case c >= 'a' && c <= 'z':
		// Aromatic symbol: try two letters (se, as), then one.
		sym := string(c - 'a' + 'A')
		if p.pos+1 < len(p.in) && p.in[p.pos+1] >= 'a' && p.in[p.pos+1] <= 'z' {
			if z2, err := molecule.AtomicNumber(sym + string(p.in[p.pos+1])); err == nil {
				z, aromatic = z2, true
				p.pos += 2
				break
			}
		}
		z2, err := molecule.AtomicNumber(sym)
		if err != nil {
			return fmt.Errorf("smiles: pos %d: %w", p.pos, err)
		}
		z, aromatic = z2, true
		p.pos++
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		if p.pos+1 < len(p.in) && p.in[p.pos+1] >= 'a' && p.in[p.pos+1] <= 'z' {
			if z2, err := molecule.AtomicNumber(sym + string(p.in[p.pos+1])); err == nil {
				z = z2
				p.pos += 2
				break
			}
		}
		z2, err := molecule.AtomicNumber(sym)
		if err != nil {
			return fmt.Errorf("smiles: pos %d: %w", p.pos, err)
		}
		z = z2
		p.pos++
	default:
		return p.syntaxErr("expected element symbol in bracket")
	}

	// 3. Tetrahedral mark
	mark := molecule.ParityNone
	if p.pos < len(p.in) && p.in[p.pos] == '@' {
		mark = molecule.ParityAnticlockwise
		p.pos++
		if p.pos < len(p.in) && p.in[p.pos] == '@' {
			mark = molecule.ParityClockwise
			p.pos++
		}
	}

	// 4. Hydrogen count
	hcount := 0
	if p.pos < len(p.in) && p.in[p.pos] == 'H' {
		hcount = 1
		p.pos++
		if p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			hcount = int(p.in[p.pos] - '0')
			p.pos++
		}
	}

	// 5. Formal charge: "+", "++", "+2", "-", "--", "-3"
	charge := 0
	if p.pos < len(p.in) && (p.in[p.pos] == '+' || p.in[p.pos] == '-') {
		sign := 1
		if p.in[p.pos] == '-' {
			sign = -1
		}
		mag := 1
		first := p.in[p.pos]
		p.pos++
		if p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			mag = 0
			for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
				mag = mag*10 + int(p.in[p.pos]-'0')
				p.pos++
			}
		} else {
			for p.pos < len(p.in) && p.in[p.pos] == first {
				mag++
				p.pos++
			}
		}
		charge = sign * mag
	}

	// 6. Atom class: ":nnn" is parsed and discarded
	if p.pos < len(p.in) && p.in[p.pos] == ':' {
		p.pos++
		if p.pos >= len(p.in) || !isDigit(p.in[p.pos]) {
			return p.syntaxErr("atom class needs digits")
		}
		for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			p.pos++
		}
	}

	// 7. Closing bracket
	if p.pos >= len(p.in) || p.in[p.pos] != ']' {
		return p.syntaxErr("expected ']'")
	}
	p.pos++

	return p.addAtom(molecule.Atom{
		AtomicNum: z,
		Isotope:   isotope,
		Charge:    charge,
		Aromatic:  aromatic,
	}, true, hcount, mark)
}

// fillImplicitHydrogens applies the default-valence rule to every bare
// (non-bracket) atom: implicit H = smallest normal valence covering the
// bond-order sum, minus that sum. Aromatic atoms count one extra unit for
// their delocalized bond.
func (p *parser) fillImplicitHydrogens() {
	var sum int
	var nb molecule.Neighbor
	for idx := 0; idx < p.mol.AtomCount(); idx++ {
		if p.bracket[idx] {
			continue
		}
		atom := p.mol.Atom(idx)
		vals := molecule.DefaultValences(atom.AtomicNum)
		if vals == nil {
			continue
		}
		sum = 0
		for _, nb = range p.mol.Neighbors(idx) {
			switch p.mol.Bond(nb.BondIdx).Order {
			case molecule.Double:
				sum += 2
			case molecule.Triple:
				sum += 3
			default:
				sum++
			}
		}
		if atom.Aromatic {
			sum++
		}
		for _, v := range vals {
			if v >= sum {
				_ = p.mol.SetHydrogens(idx, v-sum)
				break
			}
		}
	}
}

// normalizeParity rewrites each written-order mark into the molecule
// convention (bond-insertion neighbor order, implicit hydrogen last). Each
// pairwise swap between the two orders flips the rotational sense.
func (p *parser) normalizeParity() {
	var target []int
	var nb molecule.Neighbor
	for idx, mark := range p.rawMarks {
		if mark == molecule.ParityNone {
			continue
		}
		w := p.written[idx]
		target = target[:0]
		for _, nb = range p.mol.Neighbors(idx) {
			target = append(target, nb.AtomIdx)
		}
		if contains(w, hPlaceholder) {
			target = append(target, hPlaceholder)
		}
		if len(w) != len(target) {
			// Written order incomplete (e.g. dangling mark); keep as written.
			_ = p.mol.SetParity(idx, mark)
			continue
		}
		if oddPermutation(w, target) {
			mark = mark.Invert()
		}
		_ = p.mol.SetParity(idx, mark)
	}
}

// oddPermutation reports whether rearranging w into target takes an odd
// number of pairwise swaps. Both slices hold the same distinct elements.
func oddPermutation(w, target []int) bool {
	pos := make(map[int]int, len(target))
	for i, v := range target {
		pos[v] = i
	}
	inversions := 0
	var i, j int
	for i = 0; i < len(w); i++ {
		for j = i + 1; j < len(w); j++ {
			if pos[w[i]] > pos[w[j]] {
				inversions++
			}
		}
	}

	return inversions%2 == 1
}

// bondFor maps a bond character to its order; '/' and '\' read as single.
func bondFor(c byte) molecule.BondOrder {
	switch c {
	case '=':
		return molecule.Double
	case '#':
		return molecule.Triple
	case ':':
		return molecule.Aromatic
	default:
		return molecule.Single
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// syntaxErr wraps ErrSyntax with the current position and a short reason.
func (p *parser) syntaxErr(reason string) error {
	return fmt.Errorf("smiles: pos %d: %s: %w", p.pos, reason, ErrSyntax)
}
