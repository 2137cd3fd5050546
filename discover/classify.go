package discover

import "strings"

// Denylist removes specific operations from scanning. Membership is
// configuration data: known-unsafe or redundant operations are excluded here,
// never in the classification algorithm itself.
type Denylist map[string]struct{}

// DefaultDenylist returns the built-in exclusions: tag lookups that need a
// target identifier, bucket listing variants redundant with the tag index,
// and operations that throw when called bare.
func DefaultDenylist() Denylist {
	d := Denylist{}
	d.Add(
		"ListCommandInvocations",
		"ListDocuments",
		"ListResourceComplianceSummaries",
		"ListTagsForResource",
		"ListBuckets",
		"ListMultipartUploads",
	)
	return d
}

// Add inserts operations into the denylist
func (d Denylist) Add(operations ...string) {
	for _, op := range operations {
		d[op] = struct{}{}
	}
}

// Contains reports whether an operation is excluded
func (d Denylist) Contains(operation string) bool {
	_, ok := d[operation]
	return ok
}

// Classifier selects listing-shaped operations from a service's operation
// set. The rule is a heuristic over naming convention, not semantics: it
// admits false positives and misses enumerating operations with unusual
// names, trading precision for zero-configuration coverage.
type Classifier struct {
	denylist Denylist
}

// NewClassifier builds a classifier with the given denylist
func NewClassifier(denylist Denylist) *Classifier {
	if denylist == nil {
		denylist = Denylist{}
	}
	return &Classifier{denylist: denylist}
}

// ListingOperations returns the subset of operations judged to enumerate
// resources, minus the denylist, preserving input order
func (c *Classifier) ListingOperations(operations []string) []string {
	var out []string
	for _, op := range operations {
		if c.denylist.Contains(op) {
			continue
		}
		if IsListingShaped(op) {
			out = append(out, op)
		}
	}
	return out
}

// IsListingShaped reports whether an operation name suggests it enumerates
// resources: it starts with "list" or "describe", or starts with "get" and
// mentions "list" or "all" elsewhere in the name
func IsListingShaped(operation string) bool {
	name := strings.ToLower(operation)
	if strings.HasPrefix(name, "list") || strings.HasPrefix(name, "describe") {
		return true
	}
	if strings.HasPrefix(name, "get") {
		rest := name[len("get"):]
		return strings.Contains(rest, "list") || strings.Contains(rest, "all")
	}
	return false
}
