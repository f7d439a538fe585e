package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency is the fare currency used on labels and e-tickets.
const Currency = "INR"

// FormatAmount renders a whole-unit amount with thousand separators, e.g. "INR 12,499".
func FormatAmount(currency string, amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if currency = strings.TrimSpace(currency); currency != "" {
		currency += " "
	}
	return fmt.Sprintf("%s%s%s", sign, currency, formatThousand(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
