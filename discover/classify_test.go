package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsListingShaped(t *testing.T) {
	tests := []struct {
		operation string
		want      bool
	}{
		{"ListFunctions", true},
		{"DescribeInstances", true},
		{"DescribeDBClusters", true},
		{"GetResourceList", true},
		{"GetAllPolicies", true},
		{"GetObject", false},
		// False positive accepted by the heuristic: "all" appears inside
		// the name
		{"GetCallerIdentity", true},
		{"GetBucketPolicy", false},
		{"CreateBucket", false},
		{"DeleteStack", false},
		{"PutItem", false},
		{"TerminateInstances", false},
		{"listqueues", true},
		{"LISTQUEUES", true},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			assert.Equal(t, tt.want, IsListingShaped(tt.operation))
		})
	}
}

func TestListingOperationsPreservesOrder(t *testing.T) {
	classifier := NewClassifier(nil)
	ops := []string{
		"DescribeVolumes",
		"CreateVolume",
		"ListSnapshots",
		"DeleteVolume",
		"DescribeInstances",
	}

	got := classifier.ListingOperations(ops)
	assert.Equal(t, []string{"DescribeVolumes", "ListSnapshots", "DescribeInstances"}, got)
}

func TestListingOperationsIdempotent(t *testing.T) {
	classifier := NewClassifier(DefaultDenylist())
	ops := []string{"ListUsers", "ListRoles", "GetUser", "CreateUser"}

	first := classifier.ListingOperations(ops)
	second := classifier.ListingOperations(first)
	assert.Equal(t, first, second)
}

func TestDenylistFiltering(t *testing.T) {
	classifier := NewClassifier(DefaultDenylist())
	ops := []string{"ListBuckets", "ListTagsForResource", "ListObjects"}

	got := classifier.ListingOperations(ops)
	assert.Equal(t, []string{"ListObjects"}, got)
}

func TestDenylistAdd(t *testing.T) {
	d := DefaultDenylist()
	assert.False(t, d.Contains("ListObjects"))

	d.Add("ListObjects")
	assert.True(t, d.Contains("ListObjects"))
	assert.True(t, d.Contains("ListBuckets"))
}
