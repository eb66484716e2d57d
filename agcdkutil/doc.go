// Package agcdkutil provides utilities for AWS CDK applications in Go.
//
// This package includes helpers for:
//   - Reproducible Go Lambda builds
//   - CDK context management and upfront validation
//   - Multi-region and multi-deployment stack management
//   - Deployment authorization via IAM groups
//   - Environment classification for shared-resource consumer/provider roles
package agcdkutil
