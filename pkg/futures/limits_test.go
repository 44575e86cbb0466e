package futures

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binancex/pkg/core"
)

func TestDepthLimit_Weight(t *testing.T) {
	tests := []struct {
		limit  DepthLimit
		weight RequestWeight
	}{
		{DepthLimit5, Weight2},
		{DepthLimit10, Weight2},
		{DepthLimit20, Weight2},
		{DepthLimit50, Weight2},
		{DepthLimit100, Weight5},
		{DepthLimit500, Weight10},
		{DepthLimit1000, Weight20},
	}

	for _, tt := range tests {
		t.Run(tt.limit.String(), func(t *testing.T) {
			assert.True(t, tt.limit.Valid())
			assert.Equal(t, tt.weight, tt.limit.Weight())
		})
	}
}

func TestDepthLimit_JSON(t *testing.T) {
	var d DepthLimit
	require.NoError(t, sonic.Unmarshal([]byte("20"), &d))
	assert.Equal(t, DepthLimit20, d)

	out, err := sonic.Marshal(DepthLimit1000)
	require.NoError(t, err)
	assert.Equal(t, "1000", string(out))

	for _, input := range []string{"0", "7", "5000", `"5"`} {
		t.Run(input, func(t *testing.T) {
			var d DepthLimit
			assert.Error(t, sonic.Unmarshal([]byte(input), &d))
		})
	}

	_, err = sonic.Marshal(DepthLimit(7))
	assert.Error(t, err)
}

func TestParseDepthLimit(t *testing.T) {
	d, err := ParseDepthLimit(100)
	require.NoError(t, err)
	assert.Equal(t, DepthLimit100, d)

	_, err = ParseDepthLimit(200)
	assert.Error(t, err)
	assert.Equal(t, "DepthLimit(200)", DepthLimit(200).String())
	assert.Equal(t, DepthLimit500, DefaultDepthLimit)
}

func TestDepthLimit_Check(t *testing.T) {
	assert.NoError(t, DepthLimit5.Check())

	var qe *core.QuerySerializationError
	require.ErrorAs(t, DepthLimit(250).Check(), &qe)
	assert.Equal(t, "limit", qe.Field)
}
