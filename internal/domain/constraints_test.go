package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConstraints() SearchConstraints {
	return SearchConstraints{
		Origin:      "BRQ",
		Destination: "PRG",
		MinLayover:  time.Hour,
		MaxLayover:  6 * time.Hour,
	}
}

func TestSearchConstraints_SetDefaults(t *testing.T) {
	t.Run("applies default layover bounds", func(t *testing.T) {
		c := SearchConstraints{Origin: "BRQ", Destination: "PRG"}
		c.SetDefaults()
		assert.Equal(t, DefaultMinLayover, c.MinLayover)
		assert.Equal(t, DefaultMaxLayover, c.MaxLayover)
	})

	t.Run("keeps explicit bounds", func(t *testing.T) {
		c := SearchConstraints{Origin: "BRQ", Destination: "PRG", MinLayover: 30 * time.Minute, MaxLayover: 2 * time.Hour}
		c.SetDefaults()
		assert.Equal(t, 30*time.Minute, c.MinLayover)
		assert.Equal(t, 2*time.Hour, c.MaxLayover)
	})
}

func TestSearchConstraints_Validate(t *testing.T) {
	negativePrice := -1.0
	negativeConns := -1

	tests := []struct {
		name    string
		mutate  func(*SearchConstraints)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *SearchConstraints) {}, wantErr: false},
		{name: "lowercase origin", mutate: func(c *SearchConstraints) { c.Origin = "brq" }, wantErr: true},
		{name: "short destination", mutate: func(c *SearchConstraints) { c.Destination = "PR" }, wantErr: true},
		{name: "empty origin", mutate: func(c *SearchConstraints) { c.Origin = "" }, wantErr: true},
		{name: "same endpoints", mutate: func(c *SearchConstraints) { c.Destination = "BRQ" }, wantErr: true},
		{name: "negative bags", mutate: func(c *SearchConstraints) { c.RequiredBags = -1 }, wantErr: true},
		{name: "negative min layover", mutate: func(c *SearchConstraints) { c.MinLayover = -time.Hour }, wantErr: true},
		{name: "max layover below min", mutate: func(c *SearchConstraints) { c.MaxLayover = 30 * time.Minute }, wantErr: true},
		{name: "negative max price", mutate: func(c *SearchConstraints) { c.MaxPrice = &negativePrice }, wantErr: true},
		{name: "negative max connections", mutate: func(c *SearchConstraints) { c.MaxConnections = &negativeConns }, wantErr: true},
		{name: "zero max price is valid", mutate: func(c *SearchConstraints) { zero := 0.0; c.MaxPrice = &zero }, wantErr: false},
		{name: "zero max connections is valid", mutate: func(c *SearchConstraints) { zero := 0; c.MaxConnections = &zero }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConstraints()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConstraints)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTripConstraints_Validate(t *testing.T) {
	returning := validConstraints()
	returning.Origin, returning.Destination = "PRG", "BRQ"

	t.Run("one way", func(t *testing.T) {
		tc := TripConstraints{Departing: validConstraints()}
		assert.NoError(t, tc.Validate())
		assert.False(t, tc.RoundTrip())
	})

	t.Run("round trip with mirrored endpoints", func(t *testing.T) {
		ret := returning
		tc := TripConstraints{Departing: validConstraints(), Returning: &ret}
		assert.NoError(t, tc.Validate())
		assert.True(t, tc.RoundTrip())
	})

	t.Run("returning leg must reverse endpoints", func(t *testing.T) {
		ret := validConstraints()
		ret.Origin, ret.Destination = "PRG", "VIE"
		tc := TripConstraints{Departing: validConstraints(), Returning: &ret}
		assert.ErrorIs(t, tc.Validate(), ErrInvalidConstraints)
	})

	t.Run("legs must share the bag count", func(t *testing.T) {
		ret := returning
		ret.RequiredBags = 2
		tc := TripConstraints{Departing: validConstraints(), Returning: &ret}
		assert.ErrorIs(t, tc.Validate(), ErrInvalidConstraints)
	})

	t.Run("invalid departing leg surfaces first", func(t *testing.T) {
		dep := validConstraints()
		dep.Origin = "xx"
		ret := returning
		tc := TripConstraints{Departing: dep, Returning: &ret}
		assert.ErrorIs(t, tc.Validate(), ErrInvalidConstraints)
	})
}

func TestTripConstraints_Accessors(t *testing.T) {
	price := 250.0
	dep := validConstraints()
	dep.RequiredBags = 2
	dep.MaxPrice = &price

	tc := TripConstraints{Departing: dep}
	assert.Equal(t, 2, tc.RequiredBags())
	assert.Equal(t, &price, tc.MaxPrice())
}
