package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManualText(t *testing.T) {
	text := `
2020,100,10,1000,50

2021, 110, 10.5, 1010, 51
not,a,valid,row
2022,120,11,1020,52
`
	series, err := ParseManualText(text)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, 2020, series[0].Year)
	assert.Equal(t, 110.0, series[1].Production)
	assert.Equal(t, 2022, series[2].Year)
}

func TestParseManualText_Empty(t *testing.T) {
	_, err := ParseManualText("   \n  \n")
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
}
