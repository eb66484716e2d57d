package agcdkutil

// AllKnownRegions returns the AWS regions this module supports, in a stable
// order suitable for selection prompts.
func AllKnownRegions() []string {
	return []string{
		"us-east-1",
		"us-east-2",
		"us-west-1",
		"us-west-2",
		"eu-central-1",
		"eu-west-1",
		"eu-west-2",
		"eu-west-3",
		"eu-north-1",
		"ap-southeast-1",
		"ap-southeast-2",
		"ap-northeast-1",
		"ap-south-1",
		"ca-central-1",
		"sa-east-1",
	}
}
