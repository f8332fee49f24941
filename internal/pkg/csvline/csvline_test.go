package csvline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "1,1984,George Orwell",
			want: []string{"1", "1984", "George Orwell"},
		},
		{
			name: "comma inside double quotes",
			line: `1,"Smith, John",42`,
			want: []string{"1", "Smith, John", "42"},
		},
		{
			name: "empty middle field preserved",
			line: "1,,3",
			want: []string{"1", "", "3"},
		},
		{
			name: "trailing comma yields empty field",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "doubled double quotes collapse",
			line: `"He said ""hi""",x`,
			want: []string{`He said "hi"`, "x"},
		},
		{
			name: "escaped double quote collapses",
			line: `"a \" b",y`,
			want: []string{`a " b`, "y"},
		},
		{
			name: "single quoted field",
			line: `'The Hobbit',Tolkien`,
			want: []string{"The Hobbit", "Tolkien"},
		},
		{
			name: "escaped single quote collapses",
			line: `'it\'s fine',z`,
			want: []string{"it's fine", "z"},
		},
		{
			name: "comma inside single quotes",
			line: `'one, two',three`,
			want: []string{"one, two", "three"},
		},
		{
			name: "internal whitespace kept, surrounding trimmed",
			line: "  foo  bar  , baz ",
			want: []string{"foo  bar", "baz"},
		},
		{
			name: "unbalanced quote is best effort",
			line: `"unterminated,title`,
			want: []string{"unterminated,title"},
		},
		{
			name: "single empty field",
			line: ",",
			want: []string{"", ""},
		},
		{
			name: "blank line yields nothing",
			line: "   ",
			want: nil,
		},
		{
			name: "other backslash pairs kept verbatim",
			line: `"a\nb",c`,
			want: []string{`a\nb`, "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestParseGoodreadsRow(t *testing.T) {
	line := `2767052,"The Hunger Games (The Hunger Games, #1)","Suzanne Collins","Collins, Suzanne",4.32`
	got := Parse(line)

	assert.Len(t, got, 5)
	assert.Equal(t, "The Hunger Games (The Hunger Games, #1)", got[1])
	assert.Equal(t, "Suzanne Collins", got[2])
	assert.Equal(t, "Collins, Suzanne", got[3])
}
