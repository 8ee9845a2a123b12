package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

func TestRosterParser_ParseList(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{
			name: "empty cell",
			cell: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			cell: "   ",
			want: []string{},
		},
		{
			name: "single token trimmed",
			cell: " 07001 ",
			want: []string{"07001"},
		},
		{
			name: "trims pieces and drops empties",
			cell: "a; ;b;;c ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "preserves order",
			cell: "z;a;m",
			want: []string{"z", "a", "m"},
		},
	}

	parser := NewRosterParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.ParseList(tt.cell, ListDelimiter))
		})
	}
}

func TestRosterParser_ParseName(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  domain.Person
	}{
		{
			name:  "last first suffix",
			token: "Smith, John, Jr",
			want: domain.Person{
				LastName:  "Smith",
				FirstName: "John",
				Suffix:    "Jr",
				Display:   "John Smith, Jr",
			},
		},
		{
			name:  "last first",
			token: "Smith, Jane",
			want: domain.Person{
				LastName:  "Smith",
				FirstName: "Jane",
				Display:   "Jane Smith",
			},
		},
		{
			name:  "last only",
			token: "Smith",
			want: domain.Person{
				LastName: "Smith",
				Display:  "Smith",
			},
		},
		{
			name:  "empty parts dropped before positions",
			token: ", John",
			want: domain.Person{
				LastName: "John",
				Display:  "John",
			},
		},
		{
			name:  "extra whitespace trimmed",
			token: "  Smith ,  John  ",
			want: domain.Person{
				LastName:  "Smith",
				FirstName: "John",
				Display:   "John Smith",
			},
		},
		{
			name:  "garbage token yields empty person",
			token: ",,,",
			want:  domain.Person{},
		},
	}

	parser := NewRosterParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.ParseName(tt.token))
		})
	}
}

func TestRosterParser_ParseParty(t *testing.T) {
	parser := NewRosterParser()

	row := domain.RawRow{"P1", "Smith, John, Jr; Smith, Jane; ;,,", " 07001 ;07 002", "4"}
	party := parser.ParseParty(row, 2)

	assert.Equal(t, "P1", party.PartyID)
	assert.Equal(t, 2, party.RowNumber)
	assert.Equal(t, "4", party.SeatsReserved)
	assert.Nil(t, party.SavedRsvp)

	// Garbage tokens are dropped; member order follows the cell.
	require.Len(t, party.Guests, 2)
	assert.Equal(t, "John", party.Guests[0].FirstName)
	assert.Equal(t, "Jane", party.Guests[1].FirstName)

	// Whitespace is stripped from zips, leading zeros survive.
	assert.Equal(t, []string{"07001", "07002"}, party.Zips)
}

func TestRosterParser_ParseParty_SparseRow(t *testing.T) {
	parser := NewRosterParser()

	party := parser.ParseParty(domain.RawRow{"", "Lee, Amy"}, 3)

	assert.Equal(t, 3, party.RowNumber)
	require.Len(t, party.Guests, 1)
	assert.Equal(t, "Amy Lee", party.Guests[0].Display)
	assert.Empty(t, party.Zips)
	assert.Nil(t, party.SavedRsvp)
}

func TestRosterParser_ParseParty_SavedRsvp(t *testing.T) {
	parser := NewRosterParser()

	row := domain.RawRow{"", "Lee, Amy", "07002", "", "Y", "1", "Amy", "Fish", "", " amy@example.com ", ""}
	party := parser.ParseParty(row, 5)

	require.NotNil(t, party.SavedRsvp)
	assert.Equal(t, "Y", party.SavedRsvp.Attending)
	assert.Equal(t, "1", party.SavedRsvp.Headcount)
	assert.Equal(t, "Fish", party.SavedRsvp.Meals)
	assert.Equal(t, "amy@example.com", party.SavedRsvp.Email)
}
