package awardwallet

import "fmt"

// AccessLevel identifies the level of account access granted by the user.
type AccessLevel int

const (
	ReadNumbersAndStatus AccessLevel = iota
	ReadBalancesAndStatus
	ReadAllExceptPasswords
	FullControl
)

func (l AccessLevel) String() string {
	switch l {
	case ReadNumbersAndStatus:
		return "readNumbersAndStatus"
	case ReadBalancesAndStatus:
		return "readBalancesAndStatus"
	case ReadAllExceptPasswords:
		return "readAllExceptPasswords"
	case FullControl:
		return "fullControl"
	}
	return fmt.Sprintf("AccessLevel(%d)", int(l))
}

// Valid reports whether l is one of the declared access levels.
func (l AccessLevel) Valid() bool {
	return l >= ReadNumbersAndStatus && l <= FullControl
}

// ProviderKind is the category of a loyalty provider. The codes are not
// contiguous: 11 is intentionally absent.
type ProviderKind int

const (
	KindAirline    ProviderKind = 1
	KindHotel      ProviderKind = 2
	KindCarRental  ProviderKind = 3
	KindTrain      ProviderKind = 4
	KindOther      ProviderKind = 5
	KindCreditCard ProviderKind = 6
	KindShopping   ProviderKind = 7
	KindDining     ProviderKind = 8
	KindSurvey     ProviderKind = 9
	KindCruiseLine ProviderKind = 10
	KindParking    ProviderKind = 12
)

var providerKindNames = map[ProviderKind]string{
	KindAirline:    "airline",
	KindHotel:      "hotel",
	KindCarRental:  "carRental",
	KindTrain:      "train",
	KindOther:      "other",
	KindCreditCard: "creditCard",
	KindShopping:   "shopping",
	KindDining:     "dining",
	KindSurvey:     "survey",
	KindCruiseLine: "cruiseLine",
	KindParking:    "parking",
}

func (k ProviderKind) String() string {
	if name, ok := providerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ProviderKind(%d)", int(k))
}

// Valid reports whether k is one of the declared provider categories.
func (k ProviderKind) Valid() bool {
	_, ok := providerKindNames[k]
	return ok
}
