package awardwallet_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/markferry/awardwallet"
	"github.com/markferry/awardwallet/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const accountScenario = `{
	"accountId": 42,
	"code": "AA",
	"displayName": "Main",
	"kind": "airline",
	"login": "u",
	"autologinUrl": "",
	"updateUrl": "",
	"editUrl": "",
	"balance": "1,000",
	"balanceRaw": 1000.0,
	"owner": "me",
	"errorCode": 0
}`

func wireKeys(t *testing.T, data []byte) []string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asValidationError(t *testing.T, err error) *awardwallet.ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *awardwallet.ValidationError
	require.True(t, errors.As(err, &ve), "expected a ValidationError, got: %v", err)
	return ve
}

func TestDecodeAccount(t *testing.T) {
	// when
	account, err := awardwallet.DecodeAccount([]byte(accountScenario))

	// then
	require.NoError(t, err)
	testutil.Equal(t, awardwallet.Account{
		AccountId:   42,
		Code:        "AA",
		DisplayName: "Main",
		Kind:        "airline",
		Login:       "u",
		Balance:     "1,000",
		BalanceRaw:  1000.0,
		Owner:       "me",
	}, account)

	// serializing back yields exactly the keys that were present
	data, err := json.Marshal(account)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"accountId", "autologinUrl", "balance", "balanceRaw", "code",
		"displayName", "editUrl", "errorCode", "kind", "login",
		"owner", "updateUrl",
	}, wireKeys(t, data))
}

func TestDecodeAccount_SnakeCaseKeys(t *testing.T) {
	// given: the same account keyed with the internal naming form
	payload := `{
		"account_id": 42,
		"code": "AA",
		"display_name": "Main",
		"kind": "airline",
		"login": "u",
		"autologin_url": "",
		"update_url": "",
		"edit_url": "",
		"balance": "1,000",
		"balance_raw": 1000.0,
		"owner": "me",
		"error_code": 0
	}`

	// when
	fromSnake, err := awardwallet.DecodeAccount([]byte(payload))
	require.NoError(t, err)
	fromCamel, err := awardwallet.DecodeAccount([]byte(accountScenario))
	require.NoError(t, err)

	// then
	testutil.Equal(t, fromCamel, fromSnake)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	for _, test := range []struct {
		name     string
		decode   func([]byte) error
		payload  string
		wantPath string
	}{
		{
			name:     "account missing balanceRaw",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeAccount(b); return err },
			payload:  `{"accountId": 1, "code": "AA", "displayName": "x", "kind": "airline", "login": "u", "autologinUrl": "", "updateUrl": "", "editUrl": "", "balance": "0", "owner": "me", "errorCode": 0}`,
			wantPath: "balanceRaw",
		},
		{
			name:     "account property missing value",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeAccountProperty(b); return err },
			payload:  `{"name": "Status"}`,
			wantPath: "value",
		},
		{
			name:     "history field missing code",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeHistoryField(b); return err },
			payload:  `{"name": "Miles", "value": "500"}`,
			wantPath: "code",
		},
		{
			name:     "sub account missing displayName",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeSubAccount(b); return err },
			payload:  `{"subAccountId": 7, "balance": "12"}`,
			wantPath: "displayName",
		},
		{
			name:     "index item missing lastChangeDate",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeAccountsIndexItem(b); return err },
			payload:  `{"accountId": 9}`,
			wantPath: "lastChangeDate",
		},
		{
			name:     "member missing accountsIndex",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeMemberListItem(b); return err },
			payload:  `{"memberId": 1, "fullName": "n", "editMemberUrl": "", "accountListUrl": "", "timelineUrl": ""}`,
			wantPath: "accountsIndex",
		},
		{
			name:     "member details missing accounts",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeGetMemberDetailsResponse(b); return err },
			payload:  `{"memberId": 1, "fullName": "n", "editMemberUrl": "", "accountListUrl": "", "timelineUrl": ""}`,
			wantPath: "accounts",
		},
		{
			name:     "account details missing account list",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeGetAccountDetailsResponse(b); return err },
			payload:  `{}`,
			wantPath: "account",
		},
		{
			name:     "provider info missing kind",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeProviderInfo(b); return err },
			payload:  `{"code": "aa", "displayName": "American"}`,
			wantPath: "kind",
		},
		{
			name:     "provider details missing code",
			decode:   func(b []byte) error { _, err := awardwallet.DecodeProviderDetails(b); return err },
			payload:  `{"kind": 1, "displayName": "American"}`,
			wantPath: "code",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.decode([]byte(test.payload))

			ve := asValidationError(t, err)
			assert.Equal(t, test.wantPath, ve.Path)
			assert.Equal(t, "missing required field", ve.Reason)
		})
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	for _, test := range []struct {
		name     string
		payload  string
		wantPath string
	}{
		{
			name:     "string for accountId",
			payload:  `{"accountId": "42"}`,
			wantPath: "accountId",
		},
		{
			name:     "number for balance",
			payload:  `{"accountId": 42, "balance": 1000}`,
			wantPath: "balance",
		},
		{
			name:     "object for properties",
			payload:  `{"accountId": 42, "properties": {}}`,
			wantPath: "properties",
		},
		{
			name:     "null for required code",
			payload:  `{"accountId": 42, "code": null}`,
			wantPath: "code",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := awardwallet.DecodeAccount([]byte(test.payload))

			ve := asValidationError(t, err)
			assert.Equal(t, test.wantPath, ve.Path)
		})
	}
}

func TestDecode_NestedFieldPath(t *testing.T) {
	payload := `{
		"memberId": 1,
		"fullName": "n",
		"editMemberUrl": "",
		"accountListUrl": "",
		"timelineUrl": "",
		"accountsIndex": [
			{"accountId": 1, "lastChangeDate": "2024-01-01T00:00:00Z"},
			{"accountId": 2, "lastChangeDate": "not-a-date"}
		]
	}`

	_, err := awardwallet.DecodeMemberListItem([]byte(payload))

	ve := asValidationError(t, err)
	assert.Equal(t, "accountsIndex[1].lastChangeDate", ve.Path)
	assert.Contains(t, ve.Reason, "malformed timestamp")
}

func TestDecode_Timestamps(t *testing.T) {
	for _, test := range []struct {
		name        string
		value       string
		expectError bool
		want        time.Time
	}{
		{
			name:  "rfc3339",
			value: "2016-01-15T10:30:00Z",
			want:  time.Date(2016, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			value: "2016-01-15T10:30:00+02:00",
			want:  time.Date(2016, 1, 15, 10, 30, 0, 0, time.FixedZone("", 2*60*60)),
		},
		{
			name:  "zoneless",
			value: "2016-01-15T10:30:00",
			want:  time.Date(2016, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			value: "2016-01-15",
			want:  time.Date(2016, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "malformed",
			value:       "15/01/2016",
			expectError: true,
		},
		{
			name:        "empty",
			value:       "",
			expectError: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			payload := fmt.Sprintf(`{"accountId": 1, "lastChangeDate": %q}`, test.value)

			item, err := awardwallet.DecodeAccountsIndexItem([]byte(payload))

			if test.expectError {
				ve := asValidationError(t, err)
				assert.Equal(t, "lastChangeDate", ve.Path)
				return
			}
			require.NoError(t, err)
			assert.True(t, test.want.Equal(item.LastChangeDate), "want %v, got %v", test.want, item.LastChangeDate)
		})
	}
}

func TestDecodeGetMemberDetailsResponse_DiscardsIndex(t *testing.T) {
	// given: a payload that still carries the superseded index key
	payload := fmt.Sprintf(`{
		"memberId": 12,
		"fullName": "Jane Doe",
		"editMemberUrl": "https://awardwallet.com/member/edit/12",
		"accountListUrl": "https://awardwallet.com/member/accounts/12",
		"timelineUrl": "https://awardwallet.com/member/timeline/12",
		"accountsIndex": [{"accountId": 42, "lastChangeDate": "2024-01-01T00:00:00Z"}],
		"accounts": [%s]
	}`, accountScenario)

	// when
	details, err := awardwallet.DecodeGetMemberDetailsResponse([]byte(payload))
	require.NoError(t, err)

	// then
	require.Len(t, details.Accounts, 1)
	assert.Equal(t, int64(42), details.Accounts[0].AccountId)

	data, err := json.Marshal(details)
	require.NoError(t, err)
	assert.NotContains(t, wireKeys(t, data), "accountsIndex")
	assert.Contains(t, wireKeys(t, data), "accounts")
}

func TestDecodeGetConnectedUserDetailsResponse_DiscardsIndex(t *testing.T) {
	payload := fmt.Sprintf(`{
		"userId": 3,
		"fullName": "John Doe",
		"status": "connected",
		"userName": "jdoe",
		"email": "j@example.com",
		"forwardingEmail": "fwd@example.com",
		"connectionType": "friend",
		"accountsAccessLevel": "fullControl",
		"accountsSharedByDefault": true,
		"editConnectionUrl": "",
		"accountListUrl": "",
		"timelineUrl": "",
		"accounts_index": [{"accountId": 42, "lastChangeDate": "2024-01-01T00:00:00Z"}],
		"accounts": [%s]
	}`, accountScenario)

	details, err := awardwallet.DecodeGetConnectedUserDetailsResponse([]byte(payload))
	require.NoError(t, err)

	require.Len(t, details.Accounts, 1)

	data, err := json.Marshal(details)
	require.NoError(t, err)
	keys := wireKeys(t, data)
	assert.NotContains(t, keys, "accountsIndex")
	assert.NotContains(t, keys, "accounts_index")
}

func TestDecodeGetAccountDetailsResponse(t *testing.T) {
	payload := fmt.Sprintf(`{
		"account": [%s],
		"member": {
			"memberId": 1,
			"fullName": "Jane Doe",
			"editMemberUrl": "",
			"accountListUrl": "",
			"timelineUrl": "",
			"accountsIndex": []
		}
	}`, accountScenario)

	resp, err := awardwallet.DecodeGetAccountDetailsResponse([]byte(payload))

	require.NoError(t, err)
	require.Len(t, resp.Account, 1)
	require.NotNil(t, resp.Member)
	assert.Equal(t, int64(1), resp.Member.MemberId)
	assert.Nil(t, resp.ConnectedUser)
}

func TestDecodeProviderInfo_KindOutOfRange(t *testing.T) {
	for _, kind := range []int{0, -1, 11, 13, 99} {
		t.Run(fmt.Sprint(kind), func(t *testing.T) {
			payload := fmt.Sprintf(`{"code": "aa", "displayName": "American", "kind": %d}`, kind)

			_, err := awardwallet.DecodeProviderInfo([]byte(payload))

			ve := asValidationError(t, err)
			assert.Equal(t, "kind", ve.Path)
			assert.Contains(t, ve.Reason, "out of range")
		})
	}
}

func TestDecode_SkipsUnknownKeys(t *testing.T) {
	payload := `{"name": "Status", "value": "Gold", "somethingNew": {"nested": [1, 2, 3]}}`

	prop, err := awardwallet.DecodeAccountProperty([]byte(payload))

	require.NoError(t, err)
	assert.Equal(t, "Status", prop.Name)
	assert.Equal(t, "Gold", prop.Value)
}

func TestDecode_NullOptionalStaysUnset(t *testing.T) {
	payload := `{"name": "Status", "value": "Gold", "rank": null, "kind": null}`

	prop, err := awardwallet.DecodeAccountProperty([]byte(payload))

	require.NoError(t, err)
	assert.Nil(t, prop.Rank)
	assert.Nil(t, prop.Kind)
}

func TestDecode_ParallelPayloads(t *testing.T) {
	// records are immutable once constructed and the codec keeps no shared
	// state, so distinct payloads may validate concurrently
	payloads := make([][]byte, 0, 64)
	for i := 0; i < 64; i++ {
		data, err := json.Marshal(testutil.MakeAccount())
		require.NoError(t, err)
		payloads = append(payloads, data)
	}

	var eg errgroup.Group
	for _, payload := range payloads {
		payload := payload
		eg.Go(func() error {
			account, err := awardwallet.DecodeAccount(payload)
			if err != nil {
				return err
			}
			if account.AccountId == 0 {
				return fmt.Errorf("decoded account has no id")
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
