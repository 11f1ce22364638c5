package awardwallet

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-faster/jx"
)

// Decoding accepts both naming forms on input: every incoming key is normalized
// from snake_case to the camelCase wire form before dispatch, so payloads keyed
// either way validate identically. Unknown keys are skipped. Output is produced
// by encode.go and is always camelCase.

// wireKey converts a snake_case key to its camelCase wire form. Keys without
// underscores pass through unchanged.
func wireKey(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	upper := false
	for _, r := range key {
		switch {
		case r == '_':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// The API emits RFC 3339 timestamps, sometimes without a zone designator, and
// bare dates for day-granularity fields.
var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseWireTime(s string) (time.Time, error) {
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func decStr(d *jx.Decoder, path, field string) (string, error) {
	v, err := d.Str()
	if err != nil {
		return "", &ValidationError{Path: joinPath(path, field), Reason: "expected string"}
	}
	return v, nil
}

func decInt(d *jx.Decoder, path, field string) (int, error) {
	v, err := d.Int()
	if err != nil {
		return 0, &ValidationError{Path: joinPath(path, field), Reason: "expected integer"}
	}
	return v, nil
}

func decInt64(d *jx.Decoder, path, field string) (int64, error) {
	v, err := d.Int64()
	if err != nil {
		return 0, &ValidationError{Path: joinPath(path, field), Reason: "expected integer"}
	}
	return v, nil
}

func decFloat64(d *jx.Decoder, path, field string) (float64, error) {
	v, err := d.Float64()
	if err != nil {
		return 0, &ValidationError{Path: joinPath(path, field), Reason: "expected number"}
	}
	return v, nil
}

func decBool(d *jx.Decoder, path, field string) (bool, error) {
	v, err := d.Bool()
	if err != nil {
		return false, &ValidationError{Path: joinPath(path, field), Reason: "expected boolean"}
	}
	return v, nil
}

func decTime(d *jx.Decoder, path, field string) (time.Time, error) {
	s, err := d.Str()
	if err != nil {
		return time.Time{}, &ValidationError{Path: joinPath(path, field), Reason: "expected timestamp string"}
	}
	t, err := parseWireTime(s)
	if err != nil {
		return time.Time{}, &ValidationError{Path: joinPath(path, field), Reason: fmt.Sprintf("malformed timestamp %q", s)}
	}
	return t, nil
}

// decNull consumes a JSON null so an optional field stays unset. A null for a
// required field is reported as a type mismatch by the dec* reader instead.
func decNull(d *jx.Decoder) (bool, error) {
	if d.Next() == jx.Null {
		return true, d.Null()
	}
	return false, nil
}

func decArr(d *jx.Decoder, path, field string, f func(d *jx.Decoder, i int) error) error {
	if d.Next() != jx.Array {
		return &ValidationError{Path: joinPath(path, field), Reason: "expected array"}
	}
	i := 0
	return d.Arr(func(d *jx.Decoder) error {
		err := f(d, i)
		i++
		return err
	})
}

func expectObj(d *jx.Decoder, path, field string) error {
	if d.Next() != jx.Object {
		return &ValidationError{Path: joinPath(path, field), Reason: "expected object"}
	}
	return nil
}

func checkRequired(path string, seen map[string]bool, fields ...string) error {
	for _, f := range fields {
		if !seen[f] {
			return errMissing(path, f)
		}
	}
	return nil
}

// DecodeAccessLevel validates a raw access-level code.
func DecodeAccessLevel(v int) (AccessLevel, error) {
	l := AccessLevel(v)
	if !l.Valid() {
		return 0, &ValidationError{Path: "accessLevel", Reason: fmt.Sprintf("access level %d out of range", v)}
	}
	return l, nil
}

func (l *AccessLevel) UnmarshalJSON(data []byte) error {
	v, err := jx.DecodeBytes(data).Int()
	if err != nil {
		return &ValidationError{Path: "accessLevel", Reason: "expected integer"}
	}
	parsed, err := DecodeAccessLevel(v)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// DecodeProviderKind validates a raw provider-category code. The declared set is
// not contiguous, so membership is checked per code.
func DecodeProviderKind(v int) (ProviderKind, error) {
	k := ProviderKind(v)
	if !k.Valid() {
		return 0, &ValidationError{Path: "kind", Reason: fmt.Sprintf("provider kind %d out of range", v)}
	}
	return k, nil
}

func (k *ProviderKind) UnmarshalJSON(data []byte) error {
	v, err := jx.DecodeBytes(data).Int()
	if err != nil {
		return &ValidationError{Path: "kind", Reason: "expected integer"}
	}
	parsed, err := DecodeProviderKind(v)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func decProviderKind(d *jx.Decoder, path, field string) (ProviderKind, error) {
	v, err := decInt(d, path, field)
	if err != nil {
		return 0, err
	}
	k := ProviderKind(v)
	if !k.Valid() {
		return 0, &ValidationError{Path: joinPath(path, field), Reason: fmt.Sprintf("provider kind %d out of range", v)}
	}
	return k, nil
}

// DecodeAccountProperty validates raw wire data against the AccountProperty shape.
func DecodeAccountProperty(data []byte) (AccountProperty, error) {
	var p AccountProperty
	if err := p.decode(jx.DecodeBytes(data), ""); err != nil {
		return AccountProperty{}, err
	}
	return p, nil
}

func (p *AccountProperty) UnmarshalJSON(data []byte) error {
	return p.decode(jx.DecodeBytes(data), "")
}

func (p *AccountProperty) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "name":
			p.Name, err = decStr(d, path, key)
		case "value":
			p.Value, err = decStr(d, path, key)
		case "rank":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v int
			if v, err = decInt(d, path, key); err == nil {
				p.Rank = &v
			}
		case "kind":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v int
			if v, err = decInt(d, path, key); err == nil {
				p.Kind = &v
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "name", "value")
}

// DecodeHistoryField validates raw wire data against the HistoryField shape.
func DecodeHistoryField(data []byte) (HistoryField, error) {
	var f HistoryField
	if err := f.decode(jx.DecodeBytes(data), ""); err != nil {
		return HistoryField{}, err
	}
	return f, nil
}

func (f *HistoryField) UnmarshalJSON(data []byte) error {
	return f.decode(jx.DecodeBytes(data), "")
}

func (f *HistoryField) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "code":
			f.Code, err = decStr(d, path, key)
		case "name":
			f.Name, err = decStr(d, path, key)
		case "value":
			f.Value, err = decStr(d, path, key)
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "code", "name", "value")
}

// DecodeHistoryItem validates raw wire data against the HistoryItem shape.
func DecodeHistoryItem(data []byte) (HistoryItem, error) {
	var h HistoryItem
	if err := h.decode(jx.DecodeBytes(data), ""); err != nil {
		return HistoryItem{}, err
	}
	return h, nil
}

func (h *HistoryItem) UnmarshalJSON(data []byte) error {
	return h.decode(jx.DecodeBytes(data), "")
}

func (h *HistoryItem) decode(d *jx.Decoder, path string) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch wireKey(key) {
		case "fields":
			if null, err := decNull(d); null || err != nil {
				return err
			}
			return decArr(d, path, "fields", func(d *jx.Decoder, i int) error {
				var f HistoryField
				if err := f.decode(d, elemPath(path, "fields", i)); err != nil {
					return err
				}
				h.Fields = append(h.Fields, f)
				return nil
			})
		default:
			return d.Skip()
		}
	})
}

// DecodeSubAccount validates raw wire data against the SubAccount shape.
func DecodeSubAccount(data []byte) (SubAccount, error) {
	var s SubAccount
	if err := s.decode(jx.DecodeBytes(data), ""); err != nil {
		return SubAccount{}, err
	}
	return s, nil
}

func (s *SubAccount) UnmarshalJSON(data []byte) error {
	return s.decode(jx.DecodeBytes(data), "")
}

func (s *SubAccount) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "subAccountId":
			s.SubAccountId, err = decInt64(d, path, key)
		case "displayName":
			s.DisplayName, err = decStr(d, path, key)
		case "balance":
			s.Balance, err = decStr(d, path, key)
		case "balanceRaw":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v float64
			if v, err = decFloat64(d, path, key); err == nil {
				s.BalanceRaw = &v
			}
		case "lastDetectedChange":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				s.LastDetectedChange = &v
			}
		case "properties":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			err = decArr(d, path, key, func(d *jx.Decoder, i int) error {
				var p AccountProperty
				if err := p.decode(d, elemPath(path, "properties", i)); err != nil {
					return err
				}
				s.Properties = append(s.Properties, p)
				return nil
			})
		case "history":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			err = decArr(d, path, key, func(d *jx.Decoder, i int) error {
				var h HistoryItem
				if err := h.decode(d, elemPath(path, "history", i)); err != nil {
					return err
				}
				s.History = append(s.History, h)
				return nil
			})
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "subAccountId", "displayName", "balance")
}

// DecodeAccount validates raw wire data against the Account shape.
func DecodeAccount(data []byte) (Account, error) {
	var a Account
	if err := a.decode(jx.DecodeBytes(data), ""); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (a *Account) UnmarshalJSON(data []byte) error {
	return a.decode(jx.DecodeBytes(data), "")
}

func (a *Account) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "accountId":
			a.AccountId, err = decInt64(d, path, key)
		case "code":
			a.Code, err = decStr(d, path, key)
		case "displayName":
			a.DisplayName, err = decStr(d, path, key)
		case "kind":
			a.Kind, err = decStr(d, path, key)
		case "login":
			a.Login, err = decStr(d, path, key)
		case "autologinUrl":
			a.AutologinUrl, err = decStr(d, path, key)
		case "updateUrl":
			a.UpdateUrl, err = decStr(d, path, key)
		case "editUrl":
			a.EditUrl, err = decStr(d, path, key)
		case "balance":
			a.Balance, err = decStr(d, path, key)
		case "balanceRaw":
			a.BalanceRaw, err = decFloat64(d, path, key)
		case "owner":
			a.Owner, err = decStr(d, path, key)
		case "errorCode":
			a.ErrorCode, err = decInt(d, path, key)
		case "lastDetectedChange":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				a.LastDetectedChange = &v
			}
		case "expirationDate":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v time.Time
			if v, err = decTime(d, path, key); err == nil {
				a.ExpirationDate = &v
			}
		case "lastRetrieveDate":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v time.Time
			if v, err = decTime(d, path, key); err == nil {
				a.LastRetrieveDate = &v
			}
		case "lastChangeDate":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v time.Time
			if v, err = decTime(d, path, key); err == nil {
				a.LastChangeDate = &v
			}
		case "errorMessage":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				a.ErrorMessage = &v
			}
		case "properties":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			err = decArr(d, path, key, func(d *jx.Decoder, i int) error {
				var p AccountProperty
				if err := p.decode(d, elemPath(path, "properties", i)); err != nil {
					return err
				}
				a.Properties = append(a.Properties, p)
				return nil
			})
		case "history":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			err = decArr(d, path, key, func(d *jx.Decoder, i int) error {
				var h HistoryItem
				if err := h.decode(d, elemPath(path, "history", i)); err != nil {
					return err
				}
				a.History = append(a.History, h)
				return nil
			})
		case "subAccounts":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			err = decArr(d, path, key, func(d *jx.Decoder, i int) error {
				var s SubAccount
				if err := s.decode(d, elemPath(path, "subAccounts", i)); err != nil {
					return err
				}
				a.SubAccounts = append(a.SubAccounts, s)
				return nil
			})
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen,
		"accountId", "code", "displayName", "kind", "login",
		"autologinUrl", "updateUrl", "editUrl",
		"balance", "balanceRaw", "owner", "errorCode")
}

// DecodeAccountsIndexItem validates raw wire data against the AccountsIndexItem shape.
func DecodeAccountsIndexItem(data []byte) (AccountsIndexItem, error) {
	var item AccountsIndexItem
	if err := item.decode(jx.DecodeBytes(data), ""); err != nil {
		return AccountsIndexItem{}, err
	}
	return item, nil
}

func (item *AccountsIndexItem) UnmarshalJSON(data []byte) error {
	return item.decode(jx.DecodeBytes(data), "")
}

func (item *AccountsIndexItem) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "accountId":
			item.AccountId, err = decInt64(d, path, key)
		case "lastChangeDate":
			item.LastChangeDate, err = decTime(d, path, key)
		case "lastRetrieveDate":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v time.Time
			if v, err = decTime(d, path, key); err == nil {
				item.LastRetrieveDate = &v
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "accountId", "lastChangeDate")
}

func decAccountsIndex(d *jx.Decoder, path, field string) ([]AccountsIndexItem, error) {
	index := []AccountsIndexItem{}
	err := decArr(d, path, field, func(d *jx.Decoder, i int) error {
		var item AccountsIndexItem
		if err := item.decode(d, elemPath(path, field, i)); err != nil {
			return err
		}
		index = append(index, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

func decAccounts(d *jx.Decoder, path, field string) ([]Account, error) {
	accounts := []Account{}
	err := decArr(d, path, field, func(d *jx.Decoder, i int) error {
		var a Account
		if err := a.decode(d, elemPath(path, field, i)); err != nil {
			return err
		}
		accounts = append(accounts, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// DecodeMemberListItem validates raw wire data against the MemberListItem shape.
func DecodeMemberListItem(data []byte) (MemberListItem, error) {
	var m MemberListItem
	if err := m.decode(jx.DecodeBytes(data), ""); err != nil {
		return MemberListItem{}, err
	}
	return m, nil
}

func (m *MemberListItem) UnmarshalJSON(data []byte) error {
	return m.decode(jx.DecodeBytes(data), "")
}

func (m *MemberListItem) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "memberId":
			m.MemberId, err = decInt64(d, path, key)
		case "fullName":
			m.FullName, err = decStr(d, path, key)
		case "editMemberUrl":
			m.EditMemberUrl, err = decStr(d, path, key)
		case "accountListUrl":
			m.AccountListUrl, err = decStr(d, path, key)
		case "timelineUrl":
			m.TimelineUrl, err = decStr(d, path, key)
		case "accountsIndex":
			m.AccountsIndex, err = decAccountsIndex(d, path, key)
		case "email":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				m.Email = &v
			}
		case "forwardingEmail":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				m.ForwardingEmail = &v
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen,
		"memberId", "fullName", "editMemberUrl", "accountListUrl", "timelineUrl", "accountsIndex")
}

// DecodeGetMemberDetailsResponse validates raw wire data against the
// GetMemberDetailsResponse shape. An accountsIndex key is accepted and
// discarded: it is superseded by the full accounts list on this shape.
func DecodeGetMemberDetailsResponse(data []byte) (GetMemberDetailsResponse, error) {
	var m GetMemberDetailsResponse
	if err := m.decode(jx.DecodeBytes(data), ""); err != nil {
		return GetMemberDetailsResponse{}, err
	}
	return m, nil
}

func (m *GetMemberDetailsResponse) UnmarshalJSON(data []byte) error {
	return m.decode(jx.DecodeBytes(data), "")
}

func (m *GetMemberDetailsResponse) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "memberId":
			m.MemberId, err = decInt64(d, path, key)
		case "fullName":
			m.FullName, err = decStr(d, path, key)
		case "editMemberUrl":
			m.EditMemberUrl, err = decStr(d, path, key)
		case "accountListUrl":
			m.AccountListUrl, err = decStr(d, path, key)
		case "timelineUrl":
			m.TimelineUrl, err = decStr(d, path, key)
		case "accounts":
			m.Accounts, err = decAccounts(d, path, key)
		case "accountsIndex":
			// superseded by accounts on this shape
			return d.Skip()
		case "email":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				m.Email = &v
			}
		case "forwardingEmail":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				m.ForwardingEmail = &v
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen,
		"memberId", "fullName", "editMemberUrl", "accountListUrl", "timelineUrl", "accounts")
}

// DecodeConnectedUserListItem validates raw wire data against the
// ConnectedUserListItem shape.
func DecodeConnectedUserListItem(data []byte) (ConnectedUserListItem, error) {
	var u ConnectedUserListItem
	if err := u.decode(jx.DecodeBytes(data), ""); err != nil {
		return ConnectedUserListItem{}, err
	}
	return u, nil
}

func (u *ConnectedUserListItem) UnmarshalJSON(data []byte) error {
	return u.decode(jx.DecodeBytes(data), "")
}

func (u *ConnectedUserListItem) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "userId":
			u.UserId, err = decInt64(d, path, key)
		case "fullName":
			u.FullName, err = decStr(d, path, key)
		case "status":
			u.Status, err = decStr(d, path, key)
		case "userName":
			u.UserName, err = decStr(d, path, key)
		case "email":
			u.Email, err = decStr(d, path, key)
		case "forwardingEmail":
			u.ForwardingEmail, err = decStr(d, path, key)
		case "connectionType":
			u.ConnectionType, err = decStr(d, path, key)
		case "accountsAccessLevel":
			u.AccountsAccessLevel, err = decStr(d, path, key)
		case "accountsSharedByDefault":
			u.AccountsSharedByDefault, err = decBool(d, path, key)
		case "editConnectionUrl":
			u.EditConnectionUrl, err = decStr(d, path, key)
		case "accountListUrl":
			u.AccountListUrl, err = decStr(d, path, key)
		case "timelineUrl":
			u.TimelineUrl, err = decStr(d, path, key)
		case "accountsIndex":
			u.AccountsIndex, err = decAccountsIndex(d, path, key)
		case "accessLevel":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				u.AccessLevel = &v
			}
		case "bookingRequestsUrl":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				u.BookingRequestsUrl = &v
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen,
		"userId", "fullName", "status", "userName", "email", "forwardingEmail",
		"connectionType", "accountsAccessLevel", "accountsSharedByDefault",
		"editConnectionUrl", "accountListUrl", "timelineUrl", "accountsIndex")
}

// DecodeGetConnectedUserDetailsResponse validates raw wire data against the
// GetConnectedUserDetailsResponse shape, with the same accountsIndex handling as
// DecodeGetMemberDetailsResponse.
func DecodeGetConnectedUserDetailsResponse(data []byte) (GetConnectedUserDetailsResponse, error) {
	var u GetConnectedUserDetailsResponse
	if err := u.decode(jx.DecodeBytes(data), ""); err != nil {
		return GetConnectedUserDetailsResponse{}, err
	}
	return u, nil
}

func (u *GetConnectedUserDetailsResponse) UnmarshalJSON(data []byte) error {
	return u.decode(jx.DecodeBytes(data), "")
}

func (u *GetConnectedUserDetailsResponse) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "userId":
			u.UserId, err = decInt64(d, path, key)
		case "fullName":
			u.FullName, err = decStr(d, path, key)
		case "status":
			u.Status, err = decStr(d, path, key)
		case "userName":
			u.UserName, err = decStr(d, path, key)
		case "email":
			u.Email, err = decStr(d, path, key)
		case "forwardingEmail":
			u.ForwardingEmail, err = decStr(d, path, key)
		case "connectionType":
			u.ConnectionType, err = decStr(d, path, key)
		case "accountsAccessLevel":
			u.AccountsAccessLevel, err = decStr(d, path, key)
		case "accountsSharedByDefault":
			u.AccountsSharedByDefault, err = decBool(d, path, key)
		case "editConnectionUrl":
			u.EditConnectionUrl, err = decStr(d, path, key)
		case "accountListUrl":
			u.AccountListUrl, err = decStr(d, path, key)
		case "timelineUrl":
			u.TimelineUrl, err = decStr(d, path, key)
		case "accounts":
			u.Accounts, err = decAccounts(d, path, key)
		case "accountsIndex":
			// superseded by accounts on this shape
			return d.Skip()
		case "accessLevel":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				u.AccessLevel = &v
			}
		case "bookingRequestsUrl":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				u.BookingRequestsUrl = &v
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen,
		"userId", "fullName", "status", "userName", "email", "forwardingEmail",
		"connectionType", "accountsAccessLevel", "accountsSharedByDefault",
		"editConnectionUrl", "accountListUrl", "timelineUrl", "accounts")
}

// DecodeGetAccountDetailsResponse validates raw wire data against the
// GetAccountDetailsResponse shape.
func DecodeGetAccountDetailsResponse(data []byte) (GetAccountDetailsResponse, error) {
	var r GetAccountDetailsResponse
	if err := r.decode(jx.DecodeBytes(data), ""); err != nil {
		return GetAccountDetailsResponse{}, err
	}
	return r, nil
}

func (r *GetAccountDetailsResponse) UnmarshalJSON(data []byte) error {
	return r.decode(jx.DecodeBytes(data), "")
}

func (r *GetAccountDetailsResponse) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "account":
			r.Account, err = decAccounts(d, path, key)
		case "member":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			if err = expectObj(d, path, key); err != nil {
				return err
			}
			var m MemberListItem
			if err = m.decode(d, joinPath(path, key)); err == nil {
				r.Member = &m
			}
		case "connectedUser":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			if err = expectObj(d, path, key); err != nil {
				return err
			}
			var u ConnectedUserListItem
			if err = u.decode(d, joinPath(path, key)); err == nil {
				r.ConnectedUser = &u
			}
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "account")
}

// DecodeProviderInfo validates raw wire data against the ProviderInfo shape.
func DecodeProviderInfo(data []byte) (ProviderInfo, error) {
	var p ProviderInfo
	if err := p.decode(jx.DecodeBytes(data), ""); err != nil {
		return ProviderInfo{}, err
	}
	return p, nil
}

func (p *ProviderInfo) UnmarshalJSON(data []byte) error {
	return p.decode(jx.DecodeBytes(data), "")
}

func (p *ProviderInfo) decode(d *jx.Decoder, path string) error {
	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "code":
			p.Code, err = decStr(d, path, key)
		case "displayName":
			p.DisplayName, err = decStr(d, path, key)
		case "kind":
			p.Kind, err = decProviderKind(d, path, key)
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "code", "displayName", "kind")
}

// DecodeProviderInputField validates raw wire data against the
// ProviderInputField shape.
func DecodeProviderInputField(data []byte) (ProviderInputField, error) {
	var f ProviderInputField
	if err := f.decode(jx.DecodeBytes(data), ""); err != nil {
		return ProviderInputField{}, err
	}
	return f, nil
}

func (f *ProviderInputField) UnmarshalJSON(data []byte) error {
	return f.decode(jx.DecodeBytes(data), "")
}

func (f *ProviderInputField) decode(d *jx.Decoder, path string) error {
	return d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "code":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				f.Code = &v
			}
		case "title":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				f.Title = &v
			}
		case "required":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v bool
			if v, err = decBool(d, path, key); err == nil {
				f.Required = &v
			}
		case "defaultValue":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				f.DefaultValue = &v
			}
		default:
			return d.Skip()
		}
		return err
	})
}

// DecodeProviderPropertyInfo validates raw wire data against the
// ProviderPropertyInfo shape.
func DecodeProviderPropertyInfo(data []byte) (ProviderPropertyInfo, error) {
	var p ProviderPropertyInfo
	if err := p.decode(jx.DecodeBytes(data), ""); err != nil {
		return ProviderPropertyInfo{}, err
	}
	return p, nil
}

func (p *ProviderPropertyInfo) UnmarshalJSON(data []byte) error {
	return p.decode(jx.DecodeBytes(data), "")
}

func (p *ProviderPropertyInfo) decode(d *jx.Decoder, path string) error {
	return d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "code":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				p.Code = &v
			}
		case "name":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				p.Name = &v
			}
		case "kind":
			// free-form string, unrelated to the ProviderKind enumeration
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				p.Kind = &v
			}
		default:
			return d.Skip()
		}
		return err
	})
}

// DecodeProviderDetails validates raw wire data against the ProviderDetails shape.
func DecodeProviderDetails(data []byte) (ProviderDetails, error) {
	var p ProviderDetails
	if err := p.decode(jx.DecodeBytes(data), ""); err != nil {
		return ProviderDetails{}, err
	}
	return p, nil
}

func (p *ProviderDetails) UnmarshalJSON(data []byte) error {
	return p.decode(jx.DecodeBytes(data), "")
}

func (p *ProviderDetails) decode(d *jx.Decoder, path string) error {
	decInput := func(d *jx.Decoder, key string, dst **ProviderInputField) error {
		if null, err := decNull(d); null || err != nil {
			return err
		}
		if err := expectObj(d, path, key); err != nil {
			return err
		}
		var f ProviderInputField
		if err := f.decode(d, joinPath(path, key)); err != nil {
			return err
		}
		*dst = &f
		return nil
	}
	decProps := func(d *jx.Decoder, key string, dst *[]ProviderPropertyInfo) error {
		if null, err := decNull(d); null || err != nil {
			return err
		}
		return decArr(d, path, key, func(d *jx.Decoder, i int) error {
			var info ProviderPropertyInfo
			if err := info.decode(d, elemPath(path, key, i)); err != nil {
				return err
			}
			*dst = append(*dst, info)
			return nil
		})
	}
	decFlag := func(d *jx.Decoder, key string, dst **bool) (err error) {
		if null, nerr := decNull(d); null || nerr != nil {
			return nerr
		}
		var v bool
		if v, err = decBool(d, path, key); err == nil {
			*dst = &v
		}
		return err
	}

	seen := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		key = wireKey(key)
		switch key {
		case "kind":
			p.Kind, err = decProviderKind(d, path, key)
		case "code":
			p.Code, err = decStr(d, path, key)
		case "displayName":
			p.DisplayName, err = decStr(d, path, key)
		case "providerName":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				p.ProviderName = &v
			}
		case "programName":
			if null, nerr := decNull(d); null || nerr != nil {
				return nerr
			}
			var v string
			if v, err = decStr(d, path, key); err == nil {
				p.ProgramName = &v
			}
		case "login":
			err = decInput(d, key, &p.Login)
		case "login2":
			err = decInput(d, key, &p.Login2)
		case "login3":
			err = decInput(d, key, &p.Login3)
		case "password":
			err = decInput(d, key, &p.Password)
		case "properties":
			err = decProps(d, key, &p.Properties)
		case "historyColumns":
			err = decProps(d, key, &p.HistoryColumns)
		case "autoLogin":
			err = decFlag(d, key, &p.AutoLogin)
		case "canParseHistory":
			err = decFlag(d, key, &p.CanParseHistory)
		case "canCheckItinerary":
			err = decFlag(d, key, &p.CanCheckItinerary)
		case "canCheckConfirmation":
			err = decFlag(d, key, &p.CanCheckConfirmation)
		default:
			return d.Skip()
		}
		seen[key] = true
		return err
	})
	if err != nil {
		return err
	}
	return checkRequired(path, seen, "kind", "code", "displayName")
}
