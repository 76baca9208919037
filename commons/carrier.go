// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"os"

	"scratchcard-server/network"
)

// InitNetworkDetector builds the detector used for the life of the process: the
// built-in prefix table with the optional NG_PREFIX_OVERWRITE file merged on top.
func InitNetworkDetector() *network.Detector {
	table := network.DefaultPrefixes()

	overwritePath := GetEnv("NG_PREFIX_OVERWRITE", "ng_prefix_overwrite.json")
	if _, err := os.Stat(overwritePath); err == nil {
		overwrite, err := network.LoadPrefixJSON(overwritePath)
		if err != nil {
			Logger.Warnf("Failed to load prefix overwrite data: %v", err)
		} else {
			table = table.Merge(overwrite)
			Logger.Infof("Loaded %d prefix overwrite entries", len(overwrite))
		}
	}

	Logger.Infof("Loaded %d network prefixes", len(table))
	return network.NewDetector(table)
}
