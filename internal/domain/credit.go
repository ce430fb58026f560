package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Credit is a monetary amount in hundredths of a currency unit. The store
// keeps two-decimal fixed-point columns; an integer count of hundredths
// represents those exactly, without float drift.
type Credit int64

// CreditFromUnits builds a Credit from whole units and hundredths.
func CreditFromUnits(units, hundredths int64) Credit {
	return Credit(units*100 + hundredths)
}

func (c Credit) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits a plain two-decimal number, e.g. 0.05.
func (c Credit) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Credit) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid credit amount %q: %w", s, err)
	}
	// Round to the nearest hundredth; amounts are two-decimal by contract.
	*c = Credit(int64(f*100 + 0.5))
	return nil
}
