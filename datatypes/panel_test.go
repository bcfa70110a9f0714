package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedpawar2254/aeon/pkg/errors"
)

func makePanel(nInstances, nChannels, nTimepoints int) Panel {
	p := make(Panel, nInstances)
	for i := range p {
		inst := make(Instance, nChannels)
		for c := range inst {
			ch := make([]float64, nTimepoints)
			for t := range ch {
				ch[t] = float64(i*100 + c*10 + t)
			}
			inst[c] = ch
		}
		p[i] = inst
	}
	return p
}

func TestCheckPanel(t *testing.T) {
	testData := map[string]struct {
		panel Panel
		meta  PanelMetadata
		fails bool
	}{
		"univariate": {
			panel: makePanel(5, 1, 12),
			meta:  PanelMetadata{NInstances: 5, NChannels: 1, NTimepoints: 12, Univariate: true},
		},
		"multivariate": {
			panel: makePanel(3, 4, 8),
			meta:  PanelMetadata{NInstances: 3, NChannels: 4, NTimepoints: 8, Univariate: false},
		},
		"empty panel": {
			panel: Panel{},
			fails: true,
		},
		"empty instance": {
			panel: Panel{Instance{}},
			fails: true,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			meta, err := CheckPanel(td.panel)
			if td.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.meta, meta)
		})
	}
}

func TestCheckPanelRaggedChannels(t *testing.T) {
	p := makePanel(3, 2, 8)
	p[1] = Instance{p[1][0]} // drop a channel from one instance

	_, err := CheckPanel(p)
	require.Error(t, err)

	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))
}

func TestCheckPanelRaggedLength(t *testing.T) {
	p := makePanel(3, 1, 8)
	p[2][0] = p[2][0][:5]

	_, err := CheckPanel(p)
	require.Error(t, err)
}

func TestSubset(t *testing.T) {
	p := makePanel(6, 1, 4)

	sub, err := p.Subset([]int{4, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 3, sub.NumInstances())
	assert.Equal(t, p[4], sub[0])
	assert.Equal(t, p[0], sub[1])
	assert.Equal(t, p[2], sub[2])

	_, err = p.Subset([]int{6})
	require.Error(t, err)
}

func TestSelectChannel(t *testing.T) {
	p := makePanel(4, 3, 5)

	uni, err := p.SelectChannel(1)
	require.NoError(t, err)

	meta, err := CheckPanel(uni)
	require.NoError(t, err)
	assert.True(t, meta.Univariate)
	assert.Equal(t, p[0][1], uni[0][0])

	_, err = p.SelectChannel(3)
	require.Error(t, err)
}

func TestInstanceFlatten(t *testing.T) {
	inst := Instance{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, inst.Flatten())
	assert.Equal(t, 2, inst.NumChannels())
	assert.Equal(t, 3, inst.Length())
}
