package dataset

import (
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const (
	pickerSeedMix uint32 = 0xa11ce
	PickerCount          = 120
)

var pickerNames = []string{"Alex", "Blake", "Casey", "Drew", "Emery", "Finley", "Gray", "Harper", "Jordan", "Kai"}

func GeneratePickers(seed uint32) []types.Picker {
	r := rng.New(seed ^ pickerSeedMix)
	out := make([]types.Picker, PickerCount)
	for i := range out {
		suffix := pad(i+1, 3)
		out[i] = types.Picker{ID: "P" + suffix, Name: rng.PickOne(r, pickerNames) + "-" + suffix}
	}
	return out
}
