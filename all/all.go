// Package all imports all status feature packages.
//
// Import this package for its side effects to register every feature:
//
//	import (
//		"github.com/DoctorusRepoOwner/common"
//		_ "github.com/DoctorusRepoOwner/common/all"
//	)
//
//	// Now all features are available
//	features := common.SupportedFeatures()
//	// ["boolean-flag", "medical-service", "payment"]
package all

import (
	_ "github.com/DoctorusRepoOwner/common/boolflag"
	_ "github.com/DoctorusRepoOwner/common/medicalservice"
	_ "github.com/DoctorusRepoOwner/common/payment"
)
