package awardwallet

import (
	"time"

	"github.com/go-faster/jx"
)

// Encoding always emits the camelCase wire form. Required fields are written
// unconditionally, unset optionals are omitted, and the two details responses
// structurally cannot emit the superseded accountsIndex key.

func encTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339))
}

// Encode writes p in the wire format.
func (p AccountProperty) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("value")
	e.Str(p.Value)
	if p.Rank != nil {
		e.FieldStart("rank")
		e.Int(*p.Rank)
	}
	if p.Kind != nil {
		e.FieldStart("kind")
		e.Int(*p.Kind)
	}
	e.ObjEnd()
}

func (p AccountProperty) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	p.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes f in the wire format.
func (f HistoryField) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(f.Code)
	e.FieldStart("name")
	e.Str(f.Name)
	e.FieldStart("value")
	e.Str(f.Value)
	e.ObjEnd()
}

func (f HistoryField) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	f.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes h in the wire format.
func (h HistoryItem) Encode(e *jx.Encoder) {
	e.ObjStart()
	if h.Fields != nil {
		e.FieldStart("fields")
		e.ArrStart()
		for _, f := range h.Fields {
			f.Encode(e)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func (h HistoryItem) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	h.Encode(&e)
	return e.Bytes(), nil
}

func encProperties(e *jx.Encoder, props []AccountProperty) {
	e.ArrStart()
	for _, p := range props {
		p.Encode(e)
	}
	e.ArrEnd()
}

func encHistory(e *jx.Encoder, history []HistoryItem) {
	e.ArrStart()
	for _, h := range history {
		h.Encode(e)
	}
	e.ArrEnd()
}

// Encode writes s in the wire format.
func (s SubAccount) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("subAccountId")
	e.Int64(s.SubAccountId)
	e.FieldStart("displayName")
	e.Str(s.DisplayName)
	e.FieldStart("balance")
	e.Str(s.Balance)
	if s.BalanceRaw != nil {
		e.FieldStart("balanceRaw")
		e.Float64(*s.BalanceRaw)
	}
	if s.LastDetectedChange != nil {
		e.FieldStart("lastDetectedChange")
		e.Str(*s.LastDetectedChange)
	}
	if s.Properties != nil {
		e.FieldStart("properties")
		encProperties(e, s.Properties)
	}
	if s.History != nil {
		e.FieldStart("history")
		encHistory(e, s.History)
	}
	e.ObjEnd()
}

func (s SubAccount) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes a in the wire format.
func (a Account) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("accountId")
	e.Int64(a.AccountId)
	e.FieldStart("code")
	e.Str(a.Code)
	e.FieldStart("displayName")
	e.Str(a.DisplayName)
	e.FieldStart("kind")
	e.Str(a.Kind)
	e.FieldStart("login")
	e.Str(a.Login)
	e.FieldStart("autologinUrl")
	e.Str(a.AutologinUrl)
	e.FieldStart("updateUrl")
	e.Str(a.UpdateUrl)
	e.FieldStart("editUrl")
	e.Str(a.EditUrl)
	e.FieldStart("balance")
	e.Str(a.Balance)
	e.FieldStart("balanceRaw")
	e.Float64(a.BalanceRaw)
	e.FieldStart("owner")
	e.Str(a.Owner)
	e.FieldStart("errorCode")
	e.Int(a.ErrorCode)
	if a.LastDetectedChange != nil {
		e.FieldStart("lastDetectedChange")
		e.Str(*a.LastDetectedChange)
	}
	if a.ExpirationDate != nil {
		e.FieldStart("expirationDate")
		encTime(e, *a.ExpirationDate)
	}
	if a.LastRetrieveDate != nil {
		e.FieldStart("lastRetrieveDate")
		encTime(e, *a.LastRetrieveDate)
	}
	if a.LastChangeDate != nil {
		e.FieldStart("lastChangeDate")
		encTime(e, *a.LastChangeDate)
	}
	if a.ErrorMessage != nil {
		e.FieldStart("errorMessage")
		e.Str(*a.ErrorMessage)
	}
	if a.Properties != nil {
		e.FieldStart("properties")
		encProperties(e, a.Properties)
	}
	if a.History != nil {
		e.FieldStart("history")
		encHistory(e, a.History)
	}
	if a.SubAccounts != nil {
		e.FieldStart("subAccounts")
		e.ArrStart()
		for _, s := range a.SubAccounts {
			s.Encode(e)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func (a Account) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	a.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes item in the wire format.
func (item AccountsIndexItem) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("accountId")
	e.Int64(item.AccountId)
	e.FieldStart("lastChangeDate")
	encTime(e, item.LastChangeDate)
	if item.LastRetrieveDate != nil {
		e.FieldStart("lastRetrieveDate")
		encTime(e, *item.LastRetrieveDate)
	}
	e.ObjEnd()
}

func (item AccountsIndexItem) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	item.Encode(&e)
	return e.Bytes(), nil
}

func encAccountsIndex(e *jx.Encoder, index []AccountsIndexItem) {
	e.ArrStart()
	for _, item := range index {
		item.Encode(e)
	}
	e.ArrEnd()
}

func encAccounts(e *jx.Encoder, accounts []Account) {
	e.ArrStart()
	for _, a := range accounts {
		a.Encode(e)
	}
	e.ArrEnd()
}

// Encode writes m in the wire format.
func (m MemberListItem) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("memberId")
	e.Int64(m.MemberId)
	e.FieldStart("fullName")
	e.Str(m.FullName)
	e.FieldStart("editMemberUrl")
	e.Str(m.EditMemberUrl)
	e.FieldStart("accountListUrl")
	e.Str(m.AccountListUrl)
	e.FieldStart("timelineUrl")
	e.Str(m.TimelineUrl)
	e.FieldStart("accountsIndex")
	encAccountsIndex(e, m.AccountsIndex)
	if m.Email != nil {
		e.FieldStart("email")
		e.Str(*m.Email)
	}
	if m.ForwardingEmail != nil {
		e.FieldStart("forwardingEmail")
		e.Str(*m.ForwardingEmail)
	}
	e.ObjEnd()
}

func (m MemberListItem) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	m.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes m in the wire format. The shape carries no accounts-index field,
// so the superseded key can never appear in output.
func (m GetMemberDetailsResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("memberId")
	e.Int64(m.MemberId)
	e.FieldStart("fullName")
	e.Str(m.FullName)
	e.FieldStart("editMemberUrl")
	e.Str(m.EditMemberUrl)
	e.FieldStart("accountListUrl")
	e.Str(m.AccountListUrl)
	e.FieldStart("timelineUrl")
	e.Str(m.TimelineUrl)
	e.FieldStart("accounts")
	encAccounts(e, m.Accounts)
	if m.Email != nil {
		e.FieldStart("email")
		e.Str(*m.Email)
	}
	if m.ForwardingEmail != nil {
		e.FieldStart("forwardingEmail")
		e.Str(*m.ForwardingEmail)
	}
	e.ObjEnd()
}

func (m GetMemberDetailsResponse) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	m.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes u in the wire format.
func (u ConnectedUserListItem) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("userId")
	e.Int64(u.UserId)
	e.FieldStart("fullName")
	e.Str(u.FullName)
	e.FieldStart("status")
	e.Str(u.Status)
	e.FieldStart("userName")
	e.Str(u.UserName)
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("forwardingEmail")
	e.Str(u.ForwardingEmail)
	e.FieldStart("connectionType")
	e.Str(u.ConnectionType)
	e.FieldStart("accountsAccessLevel")
	e.Str(u.AccountsAccessLevel)
	e.FieldStart("accountsSharedByDefault")
	e.Bool(u.AccountsSharedByDefault)
	e.FieldStart("editConnectionUrl")
	e.Str(u.EditConnectionUrl)
	e.FieldStart("accountListUrl")
	e.Str(u.AccountListUrl)
	e.FieldStart("timelineUrl")
	e.Str(u.TimelineUrl)
	e.FieldStart("accountsIndex")
	encAccountsIndex(e, u.AccountsIndex)
	if u.AccessLevel != nil {
		e.FieldStart("accessLevel")
		e.Str(*u.AccessLevel)
	}
	if u.BookingRequestsUrl != nil {
		e.FieldStart("bookingRequestsUrl")
		e.Str(*u.BookingRequestsUrl)
	}
	e.ObjEnd()
}

func (u ConnectedUserListItem) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	u.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes u in the wire format, with the same accounts-index suppression
// as GetMemberDetailsResponse.
func (u GetConnectedUserDetailsResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("userId")
	e.Int64(u.UserId)
	e.FieldStart("fullName")
	e.Str(u.FullName)
	e.FieldStart("status")
	e.Str(u.Status)
	e.FieldStart("userName")
	e.Str(u.UserName)
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("forwardingEmail")
	e.Str(u.ForwardingEmail)
	e.FieldStart("connectionType")
	e.Str(u.ConnectionType)
	e.FieldStart("accountsAccessLevel")
	e.Str(u.AccountsAccessLevel)
	e.FieldStart("accountsSharedByDefault")
	e.Bool(u.AccountsSharedByDefault)
	e.FieldStart("editConnectionUrl")
	e.Str(u.EditConnectionUrl)
	e.FieldStart("accountListUrl")
	e.Str(u.AccountListUrl)
	e.FieldStart("timelineUrl")
	e.Str(u.TimelineUrl)
	e.FieldStart("accounts")
	encAccounts(e, u.Accounts)
	if u.AccessLevel != nil {
		e.FieldStart("accessLevel")
		e.Str(*u.AccessLevel)
	}
	if u.BookingRequestsUrl != nil {
		e.FieldStart("bookingRequestsUrl")
		e.Str(*u.BookingRequestsUrl)
	}
	e.ObjEnd()
}

func (u GetConnectedUserDetailsResponse) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	u.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes r in the wire format.
func (r GetAccountDetailsResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("account")
	encAccounts(e, r.Account)
	if r.Member != nil {
		e.FieldStart("member")
		r.Member.Encode(e)
	}
	if r.ConnectedUser != nil {
		e.FieldStart("connectedUser")
		r.ConnectedUser.Encode(e)
	}
	e.ObjEnd()
}

func (r GetAccountDetailsResponse) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	r.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes p in the wire format.
func (p ProviderInfo) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(p.Code)
	e.FieldStart("displayName")
	e.Str(p.DisplayName)
	e.FieldStart("kind")
	e.Int(int(p.Kind))
	e.ObjEnd()
}

func (p ProviderInfo) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	p.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes f in the wire format.
func (f ProviderInputField) Encode(e *jx.Encoder) {
	e.ObjStart()
	if f.Code != nil {
		e.FieldStart("code")
		e.Str(*f.Code)
	}
	if f.Title != nil {
		e.FieldStart("title")
		e.Str(*f.Title)
	}
	if f.Required != nil {
		e.FieldStart("required")
		e.Bool(*f.Required)
	}
	if f.DefaultValue != nil {
		e.FieldStart("defaultValue")
		e.Str(*f.DefaultValue)
	}
	e.ObjEnd()
}

func (f ProviderInputField) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	f.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes p in the wire format.
func (p ProviderPropertyInfo) Encode(e *jx.Encoder) {
	e.ObjStart()
	if p.Code != nil {
		e.FieldStart("code")
		e.Str(*p.Code)
	}
	if p.Name != nil {
		e.FieldStart("name")
		e.Str(*p.Name)
	}
	if p.Kind != nil {
		e.FieldStart("kind")
		e.Str(*p.Kind)
	}
	e.ObjEnd()
}

func (p ProviderPropertyInfo) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	p.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes p in the wire format.
func (p ProviderDetails) Encode(e *jx.Encoder) {
	encProps := func(infos []ProviderPropertyInfo) {
		e.ArrStart()
		for _, info := range infos {
			info.Encode(e)
		}
		e.ArrEnd()
	}

	e.ObjStart()
	e.FieldStart("kind")
	e.Int(int(p.Kind))
	e.FieldStart("code")
	e.Str(p.Code)
	e.FieldStart("displayName")
	e.Str(p.DisplayName)
	if p.ProviderName != nil {
		e.FieldStart("providerName")
		e.Str(*p.ProviderName)
	}
	if p.ProgramName != nil {
		e.FieldStart("programName")
		e.Str(*p.ProgramName)
	}
	if p.Login != nil {
		e.FieldStart("login")
		p.Login.Encode(e)
	}
	if p.Login2 != nil {
		e.FieldStart("login2")
		p.Login2.Encode(e)
	}
	if p.Login3 != nil {
		e.FieldStart("login3")
		p.Login3.Encode(e)
	}
	if p.Password != nil {
		e.FieldStart("password")
		p.Password.Encode(e)
	}
	if p.Properties != nil {
		e.FieldStart("properties")
		encProps(p.Properties)
	}
	if p.HistoryColumns != nil {
		e.FieldStart("historyColumns")
		encProps(p.HistoryColumns)
	}
	if p.AutoLogin != nil {
		e.FieldStart("autoLogin")
		e.Bool(*p.AutoLogin)
	}
	if p.CanParseHistory != nil {
		e.FieldStart("canParseHistory")
		e.Bool(*p.CanParseHistory)
	}
	if p.CanCheckItinerary != nil {
		e.FieldStart("canCheckItinerary")
		e.Bool(*p.CanCheckItinerary)
	}
	if p.CanCheckConfirmation != nil {
		e.FieldStart("canCheckConfirmation")
		e.Bool(*p.CanCheckConfirmation)
	}
	e.ObjEnd()
}

func (p ProviderDetails) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	p.Encode(&e)
	return e.Bytes(), nil
}

// MarshalJSON emits the raw integer code.
func (l AccessLevel) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.Int(int(l))
	return e.Bytes(), nil
}

// MarshalJSON emits the raw integer code.
func (k ProviderKind) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.Int(int(k))
	return e.Bytes(), nil
}
