package font

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Record is a single typography entry.
type Record struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Size     string   `json:"size" yaml:"size"`
	Style    Style    `json:"style" yaml:"style"`
	Weight   Weight   `json:"weight" yaml:"weight"`
	Category Category `json:"category" yaml:"category"`
}

// Input carries the fields for a new record. Nombre is the legacy name of
// the Name field and is only consulted when Name is empty.
type Input struct {
	Name     string `json:"name,omitempty" yaml:"name"`
	Nombre   string `json:"nombre,omitempty" yaml:"nombre,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size"`
	Style    string `json:"style,omitempty" yaml:"style"`
	Weight   string `json:"weight,omitempty" yaml:"weight"`
	Category string `json:"category,omitempty" yaml:"category"`
}

// ResolvedName returns Name, or Nombre when Name is blank.
func (in Input) ResolvedName() string {
	if strings.TrimSpace(in.Name) != "" {
		return in.Name
	}
	return in.Nombre
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name     *string `json:"name,omitempty"`
	Nombre   *string `json:"nombre,omitempty"`
	Size     *string `json:"size,omitempty"`
	Style    *string `json:"style,omitempty"`
	Weight   *string `json:"weight,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ResolvedName returns the name the patch sets, if any.
func (p Patch) ResolvedName() *string {
	if p.Name != nil {
		return p.Name
	}
	return p.Nombre
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.ResolvedName() == nil && p.Size == nil && p.Style == nil &&
		p.Weight == nil && p.Category == nil
}

// NewRecord builds a record from input, normalizing every field. The id is
// left at zero for the registry to assign.
func NewRecord(in Input) (Record, error) {
	name, err := NormalizeName(in.ResolvedName())
	if err != nil {
		return Record{}, err
	}
	return Record{
		Name:     name,
		Size:     strings.TrimSpace(in.Size),
		Style:    ParseStyle(in.Style),
		Weight:   ParseWeight(in.Weight),
		Category: ParseCategory(in.Category),
	}, nil
}

// Apply returns a copy of r with the patch fields replaced.
func (r Record) Apply(p Patch) (Record, error) {
	out := r
	if name := p.ResolvedName(); name != nil {
		n, err := NormalizeName(*name)
		if err != nil {
			return Record{}, err
		}
		out.Name = n
	}
	if p.Size != nil {
		out.Size = strings.TrimSpace(*p.Size)
	}
	if p.Style != nil {
		out.Style = ParseStyle(*p.Style)
	}
	if p.Weight != nil {
		out.Weight = ParseWeight(*p.Weight)
	}
	if p.Category != nil {
		out.Category = ParseCategory(*p.Category)
	}
	return out, nil
}

// NormalizeName trims and NFC-normalizes a font name. A blank name is a
// validation error.
func NormalizeName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	if n == "" {
		return "", &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return n, nil
}
