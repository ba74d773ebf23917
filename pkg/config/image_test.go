package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		options ChannelOptions
		valid   bool
	}{
		{HeaderOptions(), true},
		{FullOptions(), true},
		{ChannelOptions{BitsAlpha: 1}, true},
		{ChannelOptions{}, false},
		{ChannelOptions{BitsRed: 9}, false},
		{ChannelOptions{BitsRed: 1, BitsAlpha: 15}, false},
	}

	for _, tc := range testCases {
		err := tc.options.Validate()
		if tc.valid && err != nil {
			t.Errorf("Expected %s to be valid, got %s", tc.options, err)
		} else if !tc.valid && !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("Expected ErrInvalidOptions for %s, got %v", tc.options, err)
		}
	}
}

func TestPopulateUnsetConfigVars(t *testing.T) {
	c := ImageEncodeConfig{}
	c.PopulateUnsetConfigVars()

	if c.Options != HeaderOptions() {
		t.Errorf("Expected default options %s, got %s", HeaderOptions(), c.Options)
	}
	if c.ChunkSizeMultiplier != DefaultChunkSizeMultiplier {
		t.Errorf("Expected default chunk size multiplier, got %d", c.ChunkSizeMultiplier)
	}

	c = ImageEncodeConfig{Options: Uniform(3, 2), ChunkSizeMultiplier: 7}
	c.PopulateUnsetConfigVars()
	if c.Options != Uniform(3, 2) || c.ChunkSizeMultiplier != 7 {
		t.Errorf("Set values were overwritten: %+v", c)
	}
}

func TestBudgets(t *testing.T) {
	budgets := ChannelOptions{BitsRed: 1, BitsGreen: 2, BitsBlue: 3, BitsAlpha: 4}.Budgets()
	if budgets != [ChannelsPerPixel]byte{1, 2, 3, 4} {
		t.Errorf("Budgets are not in R, G, B, A order: %v", budgets)
	}
}
