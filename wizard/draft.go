// SPDX-License-Identifier: GPL-3.0-only

package wizard

import "encoding/json"

// DraftVersion tags every saved draft. Bump it whenever a form's shape changes so
// stale drafts are discarded instead of misread.
const DraftVersion = 1

type Draft struct {
	Version   int             `json:"version"`
	Flow      string          `json:"flow"`
	Step      int             `json:"step"`
	Submitted bool            `json:"submitted"`
	Values    json.RawMessage `json:"values"`
}
