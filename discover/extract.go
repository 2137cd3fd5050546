package discover

import (
	"strings"

	"github.com/louhi-io/louhi/types"
)

// collectionSuffixes are field-name endings that mark a field as a resource
// collection regardless of its shape
var collectionSuffixes = []string{"list", "ids", "arns", "names", "summaries"}

// ExtractResources filters a response down to the fields that plausibly hold
// resources: non-empty sequences, and fields whose name carries a collection
// suffix. Nested collections more than one level deep and scalar summary
// counts are purposely ignored.
func ExtractResources(raw types.RawResponse) types.ResourceBag {
	bag := types.ResourceBag{}
	for field, value := range raw {
		if value.IsSequence() && value.Len() > 0 {
			bag[field] = value
			continue
		}
		if hasCollectionSuffix(field) {
			bag[field] = value
		}
	}
	return bag
}

func hasCollectionSuffix(field string) bool {
	name := strings.ToLower(field)
	for _, suffix := range collectionSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
