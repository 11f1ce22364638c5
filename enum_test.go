package awardwallet_test

import (
	"fmt"
	"testing"

	"github.com/markferry/awardwallet"

	"github.com/stretchr/testify/assert"
)

func TestProviderKind(t *testing.T) {
	declared := map[awardwallet.ProviderKind]string{
		awardwallet.KindAirline:    "airline",
		awardwallet.KindHotel:      "hotel",
		awardwallet.KindCarRental:  "carRental",
		awardwallet.KindTrain:      "train",
		awardwallet.KindOther:      "other",
		awardwallet.KindCreditCard: "creditCard",
		awardwallet.KindShopping:   "shopping",
		awardwallet.KindDining:     "dining",
		awardwallet.KindSurvey:     "survey",
		awardwallet.KindCruiseLine: "cruiseLine",
		awardwallet.KindParking:    "parking",
	}

	for kind, name := range declared {
		assert.True(t, kind.Valid(), "kind %d should be valid", int(kind))
		assert.Equal(t, name, kind.String())
	}

	// every declared code decodes to the matching named meaning
	kind, err := awardwallet.DecodeProviderKind(6)
	assert.NoError(t, err)
	assert.Equal(t, awardwallet.KindCreditCard, kind)

	// the set is not contiguous: 11 is intentionally absent
	for _, code := range []int{0, -3, 11, 13, 100} {
		t.Run(fmt.Sprintf("rejects %d", code), func(t *testing.T) {
			_, err := awardwallet.DecodeProviderKind(code)
			assert.Error(t, err)
			assert.False(t, awardwallet.ProviderKind(code).Valid())
		})
	}
}

func TestAccessLevel(t *testing.T) {
	declared := map[awardwallet.AccessLevel]string{
		awardwallet.ReadNumbersAndStatus:   "readNumbersAndStatus",
		awardwallet.ReadBalancesAndStatus:  "readBalancesAndStatus",
		awardwallet.ReadAllExceptPasswords: "readAllExceptPasswords",
		awardwallet.FullControl:            "fullControl",
	}

	for level, name := range declared {
		assert.True(t, level.Valid())
		assert.Equal(t, name, level.String())
	}

	level, err := awardwallet.DecodeAccessLevel(3)
	assert.NoError(t, err)
	assert.Equal(t, awardwallet.FullControl, level)

	for _, code := range []int{-1, 4, 10} {
		_, err := awardwallet.DecodeAccessLevel(code)
		assert.Error(t, err)
	}
}

func TestEnum_UnmarshalJSON(t *testing.T) {
	var kind awardwallet.ProviderKind
	assert.NoError(t, kind.UnmarshalJSON([]byte("12")))
	assert.Equal(t, awardwallet.KindParking, kind)
	assert.Error(t, kind.UnmarshalJSON([]byte("11")))
	assert.Error(t, kind.UnmarshalJSON([]byte(`"airline"`)))

	var level awardwallet.AccessLevel
	assert.NoError(t, level.UnmarshalJSON([]byte("0")))
	assert.Equal(t, awardwallet.ReadNumbersAndStatus, level)
	assert.Error(t, level.UnmarshalJSON([]byte("7")))
}
