package aws

// DefaultRegion is used when neither the profile nor the caller names one.
const DefaultRegion = "us-east-1"

// SafeString dereferences a string pointer, returning "" if nil.
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
