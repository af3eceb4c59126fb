package csvfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

const validCSV = `flight_no,origin,destination,departure,arrival,base_price,bag_price,bags_allowed
ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,9.0,2
ZT0002,BRQ,VIE,2026-09-01T06:30:00,2026-09-01T07:30:00,30.5,9.0,1
`

func TestParse(t *testing.T) {
	flights, err := Parse(strings.NewReader(validCSV))

	require.NoError(t, err)
	require.Len(t, flights, 2)

	first := flights[0]
	assert.Equal(t, "ZT0001", first.FlightNumber)
	assert.Equal(t, "BRQ", first.Origin)
	assert.Equal(t, "PRG", first.Destination)
	assert.Equal(t, "2026-09-01 06:00:00", first.Departure.Format("2006-01-02 15:04:05"))
	assert.InDelta(t, 50.0, first.BasePrice, 0.001)
	assert.InDelta(t, 9.0, first.BagPrice, 0.001)
	assert.Equal(t, 2, first.BagsAllowed)
	assert.NotEmpty(t, first.ID)

	assert.InDelta(t, 30.5, flights[1].BasePrice, 0.001)
	assert.NotEqual(t, first.ID, flights[1].ID)
}

func TestParse_ShuffledColumns(t *testing.T) {
	input := `origin,flight_no,bags_allowed,destination,departure,arrival,bag_price,base_price
BRQ,ZT0001,2,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,9.0,50.0
`
	flights, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "ZT0001", flights[0].FlightNumber)
	assert.InDelta(t, 50.0, flights[0].BasePrice, 0.001)
}

func TestParse_HeaderOnly(t *testing.T) {
	input := "flight_no,origin,destination,departure,arrival,base_price,bag_price,bags_allowed\n"
	flights, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestParse_Malformed(t *testing.T) {
	header := "flight_no,origin,destination,departure,arrival,base_price,bag_price,bags_allowed\n"

	tests := []struct {
		name   string
		record string
	}{
		{name: "same endpoints", record: "ZT0001,BRQ,BRQ,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,9.0,2"},
		{name: "bad departure", record: "ZT0001,BRQ,PRG,not-a-time,2026-09-01T07:00:00,50.0,9.0,2"},
		{name: "bad arrival", record: "ZT0001,BRQ,PRG,2026-09-01T06:00:00,yesterday,50.0,9.0,2"},
		{name: "arrival before departure", record: "ZT0001,BRQ,PRG,2026-09-01T07:00:00,2026-09-01T06:00:00,50.0,9.0,2"},
		{name: "arrival equals departure", record: "ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T06:00:00,50.0,9.0,2"},
		{name: "negative base price", record: "ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,-50.0,9.0,2"},
		{name: "non-numeric bag price", record: "ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,free,2"},
		{name: "negative bags allowed", record: "ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,9.0,-1"},
		{name: "non-integer bags allowed", record: "ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,9.0,two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header + tt.record + "\n"))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
			// The failing line number is part of the message.
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParse_MissingColumn(t *testing.T) {
	input := `flight_no,origin,destination,departure,arrival,base_price,bag_price
ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,9.0
`
	_, err := Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "bags_allowed")
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}
