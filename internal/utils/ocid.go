package utils

import (
	"fmt"
	"strings"
)

// OCID is a parsed Oracle Cloud identifier of the form
// ocid1.<resource type>.<realm>.[region][.future use].<unique id>.
type OCID struct {
	Version      string
	ResourceType string
	Realm        string
	Region       string
	Unique       string
}

// ParseOCID splits an OCID into its dot separated segments.
// The region segment may be empty, as it is for tenancies and compartments.
func ParseOCID(s string) (OCID, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 5 {
		return OCID{}, fmt.Errorf("invalid OCID %q: expected at least 5 segments, got %d", s, len(parts))
	}
	if !strings.HasPrefix(parts[0], "ocid") {
		return OCID{}, fmt.Errorf("invalid OCID %q: must start with \"ocid\"", s)
	}
	id := OCID{
		Version:      parts[0],
		ResourceType: parts[1],
		Realm:        parts[2],
		Region:       parts[3],
		Unique:       parts[len(parts)-1],
	}
	if id.ResourceType == "" || id.Realm == "" || id.Unique == "" {
		return OCID{}, fmt.Errorf("invalid OCID %q: empty resource type, realm or unique id", s)
	}
	return id, nil
}

// ShortID returns the unique trailing segment of an OCID, or the input unchanged
// when it has no "." in it.
func ShortID(ocid string) string {
	if i := strings.LastIndex(ocid, "."); i >= 0 {
		return ocid[i+1:]
	}
	return ocid
}
