package gateway

import (
	"strings"
	"time"

	"online-payments/pkg/enums"
)

// luhnValid カード番号のチェックディジットを検証する
func luhnValid(number string) bool {
	if len(number) < 12 || len(number) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// maskAccountNumber 先頭6桁と末尾4桁以外を伏せる
func maskAccountNumber(number string) string {
	if len(number) <= 10 {
		return strings.Repeat("X", len(number))
	}
	return number[:6] + strings.Repeat("X", len(number)-10) + number[len(number)-4:]
}

// expired 有効期限の月末を過ぎているかどうかを返す
func expired(month, year int, now time.Time) bool {
	if year < 100 {
		year += 2000
	}
	endOfMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return !now.Before(endOfMonth)
}

// cardBrand 番号の先頭からカードブランドを推定する
func cardBrand(number string) enums.CardType {
	switch {
	case strings.HasPrefix(number, "4"):
		return enums.CardTypeVI
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return enums.CardTypeAX
	case strings.HasPrefix(number, "6011"), strings.HasPrefix(number, "65"):
		return enums.CardTypeDI
	case strings.HasPrefix(number, "35"):
		return enums.CardTypeJC
	case len(number) > 1 && number[0] == '5' && number[1] >= '1' && number[1] <= '5':
		return enums.CardTypeMC
	case strings.HasPrefix(number, "2"):
		return enums.CardTypeMC
	default:
		return ""
	}
}
