package validate

import (
	"strconv"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// TicketCode appends a Luhn check digit to the ticket asset id so a mistyped
// code is caught at the gate before any lookup.
func TicketCode(assetID uint64) string {
	id := strconv.FormatUint(assetID, 10)
	digit, _, err := goluhn.Calculate(id)
	if err != nil {
		return id
	}
	return id + digit
}

// ParseTicketCode checks the trailing digit and returns the asset id.
func ParseTicketCode(code string) (uint64, bool) {
	code = strings.TrimSpace(code)
	if len(code) < 2 || !IsLuna(code) {
		return 0, false
	}
	id, err := strconv.ParseUint(code[:len(code)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
