// Package genome resolves genome configurations and restriction enzymes
// for the Hi-C workflow.
package genome

import (
	"fmt"
	"sort"
	"strings"
)

// Enzyme describes a restriction enzyme by its recognition site and the
// dangling-end sequence left after digestion. Both are used downstream when
// the matrix is built at restriction-fragment resolution.
type Enzyme struct {
	Site        string
	DanglingEnd string
}

// enzymes lists the restriction enzymes the matrix builder can digest with.
var enzymes = map[string]Enzyme{
	"HindIII": {Site: "AAGCTT", DanglingEnd: "AGCT"},
	"DpnII":   {Site: "GATC", DanglingEnd: "GATC"},
	"MboI":    {Site: "GATC", DanglingEnd: "GATC"},
	"BglII":   {Site: "AGATCT", DanglingEnd: "GATC"},
	"NlaIII":  {Site: "CATG", DanglingEnd: "CATG"},
	"Csp6I":   {Site: "GTAC", DanglingEnd: "TA"},
}

// LookupEnzyme returns the enzyme entry for name. Matching is
// case-insensitive since enzyme capitalisation varies between vendors.
func LookupEnzyme(name string) (Enzyme, bool) {
	for k, e := range enzymes {
		if strings.EqualFold(k, name) {
			return e, true
		}
	}
	return Enzyme{}, false
}

// ValidateEnzyme checks that name is a known restriction enzyme. The error
// lists the supported enzymes so a typo is easy to fix.
func ValidateEnzyme(name string) error {
	if _, ok := LookupEnzyme(name); ok {
		return nil
	}

	known := make([]string, 0, len(enzymes))
	for k := range enzymes {
		known = append(known, k)
	}
	sort.Strings(known)

	return fmt.Errorf("unknown restriction enzyme %q (supported: %s)", name, strings.Join(known, ", "))
}
