package structural

import "fmt"

// SupportKind discriminates the support variants.
type SupportKind int

const (
	SupportNone SupportKind = iota
	SupportFixed
	SupportPinned
	SupportRoller
)

func (k SupportKind) String() string {
	switch k {
	case SupportNone:
		return "none"
	case SupportFixed:
		return "fixed"
	case SupportPinned:
		return "pinned"
	case SupportRoller:
		return "roller"
	}
	return fmt.Sprintf("SupportKind(%d)", int(k))
}

// ParseSupportKind maps the JSON model vocabulary onto a SupportKind.
func ParseSupportKind(s string) (SupportKind, error) {
	switch s {
	case "", "none":
		return SupportNone, nil
	case "fixed":
		return SupportFixed, nil
	case "pinned":
		return SupportPinned, nil
	case "roller":
		return SupportRoller, nil
	}
	return SupportNone, fmt.Errorf("unknown support kind %q", s)
}

// Support restrains a node. Settlement is a vertical sinking in metres,
// positive downward; it only participates in beam-mode solves and is
// forced to zero whenever the structure is solved as a frame.
type Support struct {
	Kind       SupportKind
	Settlement float64
}

// Restrained reports whether the support fixes the node against
// rotation. Pinned and roller supports rotate freely.
func (s *Support) Restrained() bool {
	return s != nil && s.Kind == SupportFixed
}
