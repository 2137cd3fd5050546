package types

import "time"

// TimestampLayout is the format used for snapshot timestamps and default
// output filenames
const TimestampLayout = "2006-01-02_15-04-05"

// RawResponse is one operation's response before extraction: top-level field
// name to value, consumed immediately by the extractor
type RawResponse map[string]Value

// ResourceBag holds the fields of one response judged to represent resources.
// Present only when extraction found at least one qualifying field.
type ResourceBag map[string]Value

// Count sums the resources in the bag: sequence length per sequence field,
// one per anything else
func (b ResourceBag) Count() int {
	total := 0
	for _, v := range b {
		if v.IsSequence() {
			total += v.Len()
		} else {
			total++
		}
	}
	return total
}

// ServiceScanResult maps operation identifier to extracted resources for one
// (service, region) pair. Owned by the scanner task that produced it until
// handoff to the coordinator.
type ServiceScanResult map[string]ResourceBag

// TaggedResource is one record from the cross-service tag index
type TaggedResource struct {
	ARN  string            `json:"resource_arn"`
	Tags map[string]string `json:"tags,omitempty"`
}

// RegionResult holds both discovery strategies' findings for one region.
// Tag-index results and enumeration results are never deduplicated against
// each other; a resource may legitimately appear in both.
type RegionResult struct {
	TaggedResources []string                     `json:"tagged_resources"`
	AllResources    map[string]ServiceScanResult `json:"all_resources"`
}

// SnapshotMetadata describes one inventory run
type SnapshotMetadata struct {
	Timestamp       string   `json:"timestamp"`
	RegionsScanned  []string `json:"regions_scanned"`
	ServicesScanned []string `json:"services_scanned"`
}

// InventorySnapshot is the root artifact of a run, immutable once written
type InventorySnapshot struct {
	Metadata          SnapshotMetadata        `json:"metadata"`
	ResourcesByRegion map[string]RegionResult `json:"resources_by_region"`
}

// NewSnapshot builds an empty snapshot for the given scan scope
func NewSnapshot(now time.Time, regions, services []string) *InventorySnapshot {
	return &InventorySnapshot{
		Metadata: SnapshotMetadata{
			Timestamp:       now.Format(TimestampLayout),
			RegionsScanned:  regions,
			ServicesScanned: services,
		},
		ResourcesByRegion: make(map[string]RegionResult, len(regions)),
	}
}

// TotalTagged counts tagged resources across all regions
func (s *InventorySnapshot) TotalTagged() int {
	total := 0
	for _, r := range s.ResourcesByRegion {
		total += len(r.TaggedResources)
	}
	return total
}

// TotalDiscovered counts extracted resources across all regions and services
func (s *InventorySnapshot) TotalDiscovered() int {
	total := 0
	for _, region := range s.ResourcesByRegion {
		for _, svc := range region.AllResources {
			for _, bag := range svc {
				total += bag.Count()
			}
		}
	}
	return total
}
