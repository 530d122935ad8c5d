package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDecodeOptions(t *testing.T) {
	opts := DefaultDecodeOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 2048, opts.MaxSideLen)
	assert.Equal(t, 2.3, opts.UnclipRatio)
	assert.Equal(t, 0.7, opts.BoxScoreThreshold)
	assert.Equal(t, 0.5, opts.MaskThreshold)
}

func TestDecodeOptions_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*DecodeOptions)
		valid  bool
	}{
		{name: "defaults", mutate: func(*DecodeOptions) {}, valid: true},
		{name: "zero unclip is allowed", mutate: func(o *DecodeOptions) { o.UnclipRatio = 0 }, valid: true},
		{name: "zero max side", mutate: func(o *DecodeOptions) { o.MaxSideLen = 0 }, valid: false},
		{name: "negative max side", mutate: func(o *DecodeOptions) { o.MaxSideLen = -1 }, valid: false},
		{name: "negative unclip", mutate: func(o *DecodeOptions) { o.UnclipRatio = -0.5 }, valid: false},
		{name: "box threshold above one", mutate: func(o *DecodeOptions) { o.BoxScoreThreshold = 1.01 }, valid: false},
		{name: "box threshold below zero", mutate: func(o *DecodeOptions) { o.BoxScoreThreshold = -0.01 }, valid: false},
		{name: "mask threshold above one", mutate: func(o *DecodeOptions) { o.MaskThreshold = 1.5 }, valid: false},
		{name: "negative min box size", mutate: func(o *DecodeOptions) { o.MinBoxSize = -3 }, valid: false},
		{name: "zero max candidates", mutate: func(o *DecodeOptions) { o.MaxCandidates = 0 }, valid: false},
		{name: "negative min region area", mutate: func(o *DecodeOptions) { o.MinRegionArea = -1 }, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultDecodeOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
