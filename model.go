package awardwallet

import "time"

// Models for the AwardWallet account-access API. We maintain these by hand so we
// have a strong degree of control over how the data is validated and stored after
// deserializing. Wire names are camelCase; the codec in decode.go also accepts the
// snake_case spelling of every key.

// AccountProperty is a secondary attribute of a loyalty account.
type AccountProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Rank  *int   `json:"rank,omitempty"`
	Kind  *int   `json:"kind,omitempty"`
}

// HistoryField is a single column of a transaction history row.
type HistoryField struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HistoryItem is a single transaction history row.
type HistoryItem struct {
	Fields []HistoryField `json:"fields,omitempty"`
}

// SubAccount is a nested account under a parent Account, like an individual card
// holder under a shared account.
type SubAccount struct {
	SubAccountId       int64             `json:"subAccountId"`
	DisplayName        string            `json:"displayName"`
	Balance            string            `json:"balance"`
	BalanceRaw         *float64          `json:"balanceRaw,omitempty"`
	LastDetectedChange *string           `json:"lastDetectedChange,omitempty"`
	Properties         []AccountProperty `json:"properties,omitempty"`
	History            []HistoryItem     `json:"history,omitempty"`
}

// Account is a full loyalty account object with all its details.
type Account struct {
	AccountId          int64             `json:"accountId"`
	Code               string            `json:"code"`
	DisplayName        string            `json:"displayName"`
	Kind               string            `json:"kind"`
	Login              string            `json:"login"`
	AutologinUrl       string            `json:"autologinUrl"`
	UpdateUrl          string            `json:"updateUrl"`
	EditUrl            string            `json:"editUrl"`
	Balance            string            `json:"balance"`
	BalanceRaw         float64           `json:"balanceRaw"`
	Owner              string            `json:"owner"`
	ErrorCode          int               `json:"errorCode"`
	LastDetectedChange *string           `json:"lastDetectedChange,omitempty"`
	ExpirationDate     *time.Time        `json:"expirationDate,omitempty"`
	LastRetrieveDate   *time.Time        `json:"lastRetrieveDate,omitempty"`
	LastChangeDate     *time.Time        `json:"lastChangeDate,omitempty"`
	ErrorMessage       *string           `json:"errorMessage,omitempty"`
	Properties         []AccountProperty `json:"properties,omitempty"`
	History            []HistoryItem     `json:"history,omitempty"`
	SubAccounts        []SubAccount      `json:"subAccounts,omitempty"`
}

// AccountsIndexItem is a lightweight reference to an account, used in list views
// to avoid transferring full Account payloads.
type AccountsIndexItem struct {
	AccountId        int64      `json:"accountId"`
	LastChangeDate   time.Time  `json:"lastChangeDate"`
	LastRetrieveDate *time.Time `json:"lastRetrieveDate,omitempty"`
}

// MemberListItem is a member in a list view, carrying an index of their accounts.
type MemberListItem struct {
	MemberId        int64               `json:"memberId"`
	FullName        string              `json:"fullName"`
	EditMemberUrl   string              `json:"editMemberUrl"`
	AccountListUrl  string              `json:"accountListUrl"`
	TimelineUrl     string              `json:"timelineUrl"`
	AccountsIndex   []AccountsIndexItem `json:"accountsIndex"`
	Email           *string             `json:"email,omitempty"`
	ForwardingEmail *string             `json:"forwardingEmail,omitempty"`
}

// GetMemberDetailsResponse carries the full details for a single member. It
// repeats the MemberListItem field set but replaces the accounts index with the
// full list of Account objects; the index key is accepted on input and discarded,
// and never appears in output.
type GetMemberDetailsResponse struct {
	MemberId        int64     `json:"memberId"`
	FullName        string    `json:"fullName"`
	EditMemberUrl   string    `json:"editMemberUrl"`
	AccountListUrl  string    `json:"accountListUrl"`
	TimelineUrl     string    `json:"timelineUrl"`
	Accounts        []Account `json:"accounts"`
	Email           *string   `json:"email,omitempty"`
	ForwardingEmail *string   `json:"forwardingEmail,omitempty"`
}

// ConnectedUserListItem is a connected user in a list view: a third party granted
// delegated access to a member's accounts.
type ConnectedUserListItem struct {
	UserId                  int64               `json:"userId"`
	FullName                string              `json:"fullName"`
	Status                  string              `json:"status"`
	UserName                string              `json:"userName"`
	Email                   string              `json:"email"`
	ForwardingEmail         string              `json:"forwardingEmail"`
	ConnectionType          string              `json:"connectionType"`
	AccountsAccessLevel     string              `json:"accountsAccessLevel"`
	AccountsSharedByDefault bool                `json:"accountsSharedByDefault"`
	EditConnectionUrl       string              `json:"editConnectionUrl"`
	AccountListUrl          string              `json:"accountListUrl"`
	TimelineUrl             string              `json:"timelineUrl"`
	AccountsIndex           []AccountsIndexItem `json:"accountsIndex"`
	AccessLevel             *string             `json:"accessLevel,omitempty"`
	BookingRequestsUrl      *string             `json:"bookingRequestsUrl,omitempty"`
}

// GetConnectedUserDetailsResponse carries the full details for a single connected
// user, with the same accounts-index replacement as GetMemberDetailsResponse.
type GetConnectedUserDetailsResponse struct {
	UserId                  int64     `json:"userId"`
	FullName                string    `json:"fullName"`
	Status                  string    `json:"status"`
	UserName                string    `json:"userName"`
	Email                   string    `json:"email"`
	ForwardingEmail         string    `json:"forwardingEmail"`
	ConnectionType          string    `json:"connectionType"`
	AccountsAccessLevel     string    `json:"accountsAccessLevel"`
	AccountsSharedByDefault bool      `json:"accountsSharedByDefault"`
	EditConnectionUrl       string    `json:"editConnectionUrl"`
	AccountListUrl          string    `json:"accountListUrl"`
	TimelineUrl             string    `json:"timelineUrl"`
	Accounts                []Account `json:"accounts"`
	AccessLevel             *string   `json:"accessLevel,omitempty"`
	BookingRequestsUrl      *string   `json:"bookingRequestsUrl,omitempty"`
}

// GetAccountDetailsResponse wraps a list of accounts plus the owning member
// and/or connected user context, when the API includes it.
type GetAccountDetailsResponse struct {
	Account       []Account              `json:"account"`
	Member        *MemberListItem        `json:"member,omitempty"`
	ConnectedUser *ConnectedUserListItem `json:"connectedUser,omitempty"`
}

// ProviderInfo is the short descriptor for a supported loyalty provider.
type ProviderInfo struct {
	Code        string       `json:"code"`
	DisplayName string       `json:"displayName"`
	Kind        ProviderKind `json:"kind"`
}

// ProviderInputField describes one credential input a provider requires. All
// fields are optional since providers vary.
type ProviderInputField struct {
	Code         *string `json:"code,omitempty"`
	Title        *string `json:"title,omitempty"`
	Required     *bool   `json:"required,omitempty"`
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// ProviderPropertyInfo describes one property or history column a provider
// exposes. Kind here is a free-form string in the API response, unrelated to the
// integer ProviderKind enumeration.
type ProviderPropertyInfo struct {
	Code *string `json:"code,omitempty"`
	Name *string `json:"name,omitempty"`
	Kind *string `json:"kind,omitempty"`
}

// ProviderDetails is the full descriptor for a single provider.
type ProviderDetails struct {
	Kind                 ProviderKind           `json:"kind"`
	Code                 string                 `json:"code"`
	DisplayName          string                 `json:"displayName"`
	ProviderName         *string                `json:"providerName,omitempty"`
	ProgramName          *string                `json:"programName,omitempty"`
	Login                *ProviderInputField    `json:"login,omitempty"`
	Login2               *ProviderInputField    `json:"login2,omitempty"`
	Login3               *ProviderInputField    `json:"login3,omitempty"`
	Password             *ProviderInputField    `json:"password,omitempty"`
	Properties           []ProviderPropertyInfo `json:"properties,omitempty"`
	HistoryColumns       []ProviderPropertyInfo `json:"historyColumns,omitempty"`
	AutoLogin            *bool                  `json:"autoLogin,omitempty"`
	CanParseHistory      *bool                  `json:"canParseHistory,omitempty"`
	CanCheckItinerary    *bool                  `json:"canCheckItinerary,omitempty"`
	CanCheckConfirmation *bool                  `json:"canCheckConfirmation,omitempty"`
}
