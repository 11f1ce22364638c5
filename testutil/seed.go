package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/markferry/awardwallet"
)

// Seed builders fabricate valid records with a tight finite range of provider
// codes so seeded data gets a realistic random spread.

func MakeProviderCode() string {
	return gofakeit.RandomString([]string{
		"aadvantage",
		"united",
		"delta",
		"britishairways",
		"hilton",
		"marriott",
		"ihg",
		"avis",
	})
}

func MakeAccountKind() string {
	return gofakeit.RandomString([]string{
		"airline",
		"hotel",
		"carRental",
		"creditCard",
		"shopping",
	})
}

func MakeAccountId() int64 {
	return int64(rand.Intn(100000) + 1)
}

func MakeBalance() (string, float64) {
	raw := float64(1000 + rand.Intn(100000))
	return fmt.Sprintf("%.0f", raw), raw
}

func MakeChangeDate() time.Time {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return gofakeit.DateRange(start, start.AddDate(5, 0, 0)).UTC().Truncate(time.Second)
}

func MakeAccount() awardwallet.Account {
	balance, raw := MakeBalance()
	code := MakeProviderCode()
	return awardwallet.Account{
		AccountId:      MakeAccountId(),
		Code:           code,
		DisplayName:    gofakeit.Company(),
		Kind:           MakeAccountKind(),
		Login:          gofakeit.Username(),
		AutologinUrl:   fmt.Sprintf("https://awardwallet.com/account/autologin/%s", code),
		UpdateUrl:      fmt.Sprintf("https://awardwallet.com/account/update/%s", code),
		EditUrl:        fmt.Sprintf("https://awardwallet.com/account/edit/%s", code),
		Balance:        balance,
		BalanceRaw:     raw,
		Owner:          gofakeit.Name(),
		ErrorCode:      0,
		LastChangeDate: Ptr(MakeChangeDate()),
		Properties: []awardwallet.AccountProperty{
			{Name: "Status Level", Value: gofakeit.RandomString([]string{"Gold", "Silver", "Platinum"}), Rank: Ptr(1)},
		},
	}
}

func MakeAccountsIndex(n int) []awardwallet.AccountsIndexItem {
	index := make([]awardwallet.AccountsIndexItem, 0, n)
	for i := 0; i < n; i++ {
		index = append(index, awardwallet.AccountsIndexItem{
			AccountId:      MakeAccountId(),
			LastChangeDate: MakeChangeDate(),
		})
	}
	return index
}

func MakeMemberListItem() awardwallet.MemberListItem {
	memberId := int64(rand.Intn(1000) + 1)
	return awardwallet.MemberListItem{
		MemberId:       memberId,
		FullName:       gofakeit.Name(),
		EditMemberUrl:  fmt.Sprintf("https://awardwallet.com/member/edit/%d", memberId),
		AccountListUrl: fmt.Sprintf("https://awardwallet.com/member/accounts/%d", memberId),
		TimelineUrl:    fmt.Sprintf("https://awardwallet.com/member/timeline/%d", memberId),
		AccountsIndex:  MakeAccountsIndex(rand.Intn(4) + 1),
		Email:          Ptr(gofakeit.Email()),
	}
}

func MakeConnectedUserListItem() awardwallet.ConnectedUserListItem {
	userId := int64(rand.Intn(1000) + 1)
	return awardwallet.ConnectedUserListItem{
		UserId:                  userId,
		FullName:                gofakeit.Name(),
		Status:                  "connected",
		UserName:                gofakeit.Username(),
		Email:                   gofakeit.Email(),
		ForwardingEmail:         gofakeit.Email(),
		ConnectionType:          gofakeit.RandomString([]string{"friend", "travelAgent", "assistant"}),
		AccountsAccessLevel:     gofakeit.RandomString([]string{"readNumbersAndStatus", "fullControl"}),
		AccountsSharedByDefault: gofakeit.Bool(),
		EditConnectionUrl:       fmt.Sprintf("https://awardwallet.com/connection/edit/%d", userId),
		AccountListUrl:          fmt.Sprintf("https://awardwallet.com/connection/accounts/%d", userId),
		TimelineUrl:             fmt.Sprintf("https://awardwallet.com/connection/timeline/%d", userId),
		AccountsIndex:           MakeAccountsIndex(rand.Intn(4) + 1),
	}
}

func MakeProviderDetails() awardwallet.ProviderDetails {
	kinds := []awardwallet.ProviderKind{
		awardwallet.KindAirline,
		awardwallet.KindHotel,
		awardwallet.KindCarRental,
		awardwallet.KindCreditCard,
	}
	kind := kinds[rand.Intn(len(kinds))]
	return awardwallet.ProviderDetails{
		Kind:        kind,
		Code:        MakeProviderCode(),
		DisplayName: gofakeit.Company(),
		Login: &awardwallet.ProviderInputField{
			Code:     Ptr("login"),
			Title:    Ptr("Username"),
			Required: Ptr(true),
		},
		Password: &awardwallet.ProviderInputField{
			Code:     Ptr("password"),
			Title:    Ptr("Password"),
			Required: Ptr(true),
		},
		Properties: []awardwallet.ProviderPropertyInfo{
			{Code: Ptr("status"), Name: Ptr("Status Level"), Kind: Ptr("status")},
		},
		HistoryColumns: []awardwallet.ProviderPropertyInfo{
			{Code: Ptr("postingDate"), Name: Ptr("Posting Date"), Kind: Ptr("date")},
			{Code: Ptr("description"), Name: Ptr("Description"), Kind: Ptr("text")},
			{Code: Ptr("miles"), Name: Ptr("Miles"), Kind: Ptr("number")},
		},
		AutoLogin:       Ptr(true),
		CanParseHistory: Ptr(kind == awardwallet.KindAirline),
	}
}
