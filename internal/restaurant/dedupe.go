package restaurant

import "strings"

// Dedupe returns the input with duplicate records removed, preserving
// first-seen order. It is stable and idempotent.
//
// Identity is resolved against two separate namespaces: the vendor
// code (primary) and the name+address pair (secondary, a guard against
// code drift across search points). A record is a duplicate if its
// code has been seen, or failing that, if its name+address pair has.
// The code dominates: two records sharing a code are duplicates even
// when their names or addresses disagree, and first seen wins. Chain
// branches sharing a name but at different addresses are never
// collapsed.
func Dedupe(records []Restaurant) []Restaurant {
	seenCodes := make(map[string]bool, len(records))
	seenPairs := make(map[string]bool, len(records))

	unique := make([]Restaurant, 0, len(records))
	for _, r := range records {
		code := strings.ToLower(strings.TrimSpace(r.Code))
		if seenCodes[code] {
			continue
		}

		pair := pairKey(r)
		if pair != "" && seenPairs[pair] {
			continue
		}

		unique = append(unique, r)
		seenCodes[code] = true
		if pair != "" {
			seenPairs[pair] = true
		}
	}
	return unique
}

func pairKey(r Restaurant) string {
	if r.Address == nil {
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(r.Name))
	address := strings.ToLower(strings.TrimSpace(*r.Address))
	if name == "" || address == "" {
		return ""
	}
	return name + "|" + address
}
