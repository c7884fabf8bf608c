package storage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws/endpoints"
)

// ValidateRegion accepts only region ids enumerated by the SDK partition
// metadata. Matching is exact; "US-EAST-1" is rejected.
func ValidateRegion(region string) error {
	if strings.TrimSpace(region) == "" {
		return fmt.Errorf("%w: region is empty", ErrConfiguration)
	}
	for _, partition := range endpoints.DefaultPartitions() {
		if _, ok := partition.Regions()[region]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedRegion, region)
}

// SupportedRegions lists every enumerated region id, sorted.
func SupportedRegions() []string {
	var regions []string
	for _, partition := range endpoints.DefaultPartitions() {
		for id := range partition.Regions() {
			regions = append(regions, id)
		}
	}
	sort.Strings(regions)
	return regions
}
