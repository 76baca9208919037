// SPDX-License-Identifier: GPL-3.0-only

package network

import (
	"encoding/json"
	"fmt"
	"os"
)

// PrefixTable maps a national-format prefix ("0803", "07025") to its operator.
type PrefixTable map[string]Operator

// defaultPrefixes is the built-in allocation table. 0701 is left unallocated, so
// numbers on it are valid but classify as Unknown.
var defaultPrefixes = PrefixTable{
	"0703": MTN, "0704": MTN, "0706": MTN, "07025": MTN, "07026": MTN,
	"0801": MTN, "0803": MTN, "0806": MTN, "0810": MTN, "0813": MTN,
	"0814": MTN, "0816": MTN, "0903": MTN, "0906": MTN, "0913": MTN,
	"0916": MTN,

	"0708": Airtel, "0802": Airtel, "0808": Airtel, "0812": Airtel,
	"0901": Airtel, "0902": Airtel, "0904": Airtel, "0907": Airtel,
	"0912": Airtel,

	"0705": Glo, "0805": Glo, "0807": Glo, "0811": Glo, "0815": Glo,
	"0905": Glo, "0915": Glo,

	"0809": NineMob, "0817": NineMob, "0818": NineMob, "0908": NineMob,
	"0909": NineMob,
}

// DefaultPrefixes returns a copy of the built-in table.
func DefaultPrefixes() PrefixTable {
	return defaultPrefixes.Clone()
}

func (t PrefixTable) Clone() PrefixTable {
	out := make(PrefixTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a new table with the entries of other written over t.
func (t PrefixTable) Merge(other PrefixTable) PrefixTable {
	out := t.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

type PrefixEntry struct {
	Prefix   string   `json:"prefix"`
	Operator Operator `json:"operator"`
}

type rawPrefixData struct {
	Prefixes []PrefixEntry `json:"prefixes"`
}

// LoadPrefixJSON reads a {"prefixes": [{"prefix": "0701", "operator": "Airtel"}]}
// document. Prefixes must be 4 or 5 digits starting with 0.
func LoadPrefixJSON(filePath string) (PrefixTable, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var raw rawPrefixData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode prefix file %s: %w", filePath, err)
	}

	table := make(PrefixTable, len(raw.Prefixes))
	for _, e := range raw.Prefixes {
		if !validPrefix(e.Prefix) {
			return nil, fmt.Errorf("invalid prefix %q in %s", e.Prefix, filePath)
		}
		table[e.Prefix] = e.Operator
	}
	return table, nil
}

func validPrefix(p string) bool {
	if len(p) != 4 && len(p) != 5 {
		return false
	}
	if p[0] != '0' {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}
