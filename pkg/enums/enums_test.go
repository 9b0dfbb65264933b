package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"online-payments/pkg/marshal"
)

func TestIsKnown(t *testing.T) {
	tests := []struct {
		name  string
		input marshal.Enum
		want  bool
	}{
		{name: "正常系: ResponseStatus SUCCESS", input: ResponseStatusSuccess, want: true},
		{name: "正常系: CardType VI", input: CardTypeVI, want: true},
		{name: "正常系: ThreeDSTransactionStatus Y", input: ThreeDSTransactionStatusAuthenticated, want: true},
		{name: "異常系: 小文字", input: ResponseStatus("success"), want: false},
		{name: "異常系: 未知の値", input: CardTypeName("NEW_NETWORK"), want: false},
		{name: "異常系: 空文字列", input: WalletProvider(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.IsKnown())
		})
	}
}

func TestMembers(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		isKnown func(string) bool
		want    int
	}{
		{name: "正常系: CardType", members: CardType("").Members(), isKnown: func(s string) bool { return CardType(s).IsKnown() }, want: 17},
		{name: "正常系: CardTypeName", members: CardTypeName("").Members(), isKnown: func(s string) bool { return CardTypeName(s).IsKnown() }, want: 17},
		{name: "正常系: ChallengeAuthenticationMethod", members: ChallengeAuthenticationMethod("").Members(), isKnown: func(s string) bool { return ChallengeAuthenticationMethod(s).IsKnown() }, want: 11},
		{name: "正常系: AccountNumberType", members: AccountNumberType("").Members(), isKnown: func(s string) bool { return AccountNumberType(s).IsKnown() }, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.members, tt.want)
			for _, m := range tt.members {
				assert.True(t, tt.isKnown(m), m)
			}
		})
	}
}
