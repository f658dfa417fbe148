package order_test

import (
	"testing"

	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StringAndParse(t *testing.T) {
	names := map[order.Status]string{
		order.Received:       "RECEIVED",
		order.Preparing:      "PREPARING",
		order.Ready:          "READY",
		order.OutForDelivery: "OUT_FOR_DELIVERY",
		order.Delivered:      "DELIVERED",
	}

	for status, name := range names {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, status.String())

			parsed, err := order.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestParseStatus_RejectsUnknownNames(t *testing.T) {
	for _, in := range []string{"", "received", "EN_CAMINO", "CANCELLED", "UNKNOWN"} {
		_, err := order.ParseStatus(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate())
	}
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Ordering(t *testing.T) {
	all := order.AllStatuses()
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Less(all[i]))
		assert.False(t, all[i].Less(all[i-1]))

		next, ok := all[i-1].Next()
		require.True(t, ok)
		assert.Equal(t, all[i], next)
	}

	_, ok := order.Delivered.Next()
	assert.False(t, ok)
	_, ok = order.Unknown.Next()
	assert.False(t, ok)

	assert.True(t, order.Delivered.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}
