package tiles

import (
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// DefaultDistanceLimit is the largest edit distance reported as similar.
const DefaultDistanceLimit = 3

// FindingKind classifies a reported tile pair.
type FindingKind string

const (
	// FindingDuplicate marks two tiles that compare equal.
	FindingDuplicate FindingKind = "duplicate"
	// FindingSimilar marks two tiles within the distance limit.
	FindingSimilar FindingKind = "similar"
)

// Finding is one reported tile pair.
type Finding struct {
	Kind     FindingKind `json:"kind"`
	A        string      `json:"a"`
	B        string      `json:"b,omitempty"`
	Distance int         `json:"distance"`
}

// Report is the outcome of a check.
type Report struct {
	// Compared is the number of distinct tiles that were compared.
	Compared int `json:"compared"`
	// DistanceLimit is the limit the check ran with.
	DistanceLimit int       `json:"distance_limit"`
	Findings      []Finding `json:"findings"`
}

// Pairs returns how many unordered tile pairs the check compared.
func (r *Report) Pairs() int {
	return r.Compared * (r.Compared - 1) / 2
}

// Duplicates returns the duplicate findings.
func (r *Report) Duplicates() []Finding {
	return r.filter(FindingDuplicate)
}

// Similar returns the similar findings.
func (r *Report) Similar() []Finding {
	return r.filter(FindingSimilar)
}

// Clean reports whether the check found nothing.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

func (r *Report) filter(kind FindingKind) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// Checker compares every pair of tiles by Levenshtein distance.
type Checker struct {
	// DistanceLimit is inclusive: pairs at this distance or closer are reported.
	DistanceLimit int
	// IgnoreCase compares case-folded text.
	IgnoreCase bool
}

// NewChecker creates a Checker with the default distance limit.
func NewChecker() *Checker {
	return &Checker{DistanceLimit: DefaultDistanceLimit}
}

// Check reports the loader's dropped repeats and every pair of tiles whose
// distance is within the limit. Each unordered pair is compared once.
func (c *Checker) Check(list *List) *Report {
	report := &Report{
		Compared:      len(list.Tiles),
		DistanceLimit: c.DistanceLimit,
	}

	for _, dup := range list.Duplicates {
		report.Findings = append(report.Findings, Finding{
			Kind: FindingDuplicate,
			A:    dup,
			B:    dup,
		})
	}

	keys := list.Tiles
	if c.IgnoreCase {
		fold := cases.Fold()
		keys = make([]string, len(list.Tiles))
		for i, t := range list.Tiles {
			keys[i] = fold.String(t)
		}
	}

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := list.Tiles[i], list.Tiles[j]

			if keys[i] == keys[j] {
				report.Findings = append(report.Findings, Finding{
					Kind: FindingDuplicate,
					A:    a,
					B:    b,
				})
				continue
			}

			dist := levenshtein.ComputeDistance(keys[i], keys[j])
			if dist <= c.DistanceLimit {
				report.Findings = append(report.Findings, Finding{
					Kind:     FindingSimilar,
					A:        a,
					B:        b,
					Distance: dist,
				})
			}
		}
	}

	return report
}
