package utils

// ToString dereferences an SDK string pointer, returning "" for nil.
func ToString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToBool dereferences an SDK bool pointer, returning false for nil.
func ToBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
