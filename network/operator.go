// SPDX-License-Identifier: GPL-3.0-only

package network

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Operator is a Nigerian mobile network operator.
type Operator string

const (
	MTN     Operator = "MTN"
	Airtel  Operator = "Airtel"
	Glo     Operator = "Glo"
	NineMob Operator = "9Mobile"
	Unknown Operator = "Unknown"
)

var knownOperators = []Operator{MTN, Airtel, Glo, NineMob}

func (o Operator) String() string {
	return string(o)
}

// ParseOperator matches an operator name case-insensitively. "Etisalat" is accepted
// as the former name of 9Mobile.
func ParseOperator(name string) (Operator, error) {
	name = strings.TrimSpace(name)
	for _, op := range knownOperators {
		if strings.EqualFold(name, string(op)) {
			return op, nil
		}
	}
	if strings.EqualFold(name, "etisalat") {
		return NineMob, nil
	}
	return Unknown, fmt.Errorf("unknown operator %q", name)
}

// UnmarshalJSON accepts any name ParseOperator does, plus "Unknown".
func (o *Operator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(s), string(Unknown)) {
		*o = Unknown
		return nil
	}
	op, err := ParseOperator(s)
	if err != nil {
		return err
	}
	*o = op
	return nil
}
