package merge

import (
	"fmt"

	"dario.cat/mergo"

	errUtils "github.com/cloudmesh/yamldb/errors"
	"github.com/cloudmesh/yamldb/pkg/schema"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

const (
	ListMergeStrategyReplace = "replace"
	ListMergeStrategyAppend  = "append"
	ListMergeStrategyMerge   = "merge"
)

// MergeWithOptions takes a list of maps as input, deep-merges the items in the order
// they are defined in the list, and returns a single map with the merged contents.
func MergeWithOptions(
	inputs []map[string]any,
	appendSlice bool,
	sliceDeepCopy bool,
) (map[string]any, error) {
	merged := map[string]any{}

	for index := range inputs {
		current := inputs[index]

		if len(current) == 0 {
			continue
		}

		// Due to a bug in `mergo.Merge`
		// (in the `for` loop, it DOES modify the source of the previous loop iteration if it's a complex map and `mergo` gets a pointer to it,
		// not only the destination of the current loop iteration),
		// we don't give it our maps directly; we convert them to YAML strings and then back to `Go` maps,
		// so `mergo` does not have access to the original pointers.
		yamlCurrent, err := u.ConvertToYAML(current)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUtils.ErrMerge, err)
		}

		dataCurrent, err := u.UnmarshalYAML[map[string]any](yamlCurrent)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUtils.ErrMerge, err)
		}

		var opts []func(*mergo.Config)
		opts = append(opts, mergo.WithOverride, mergo.WithTypeCheck)

		if sliceDeepCopy {
			opts = append(opts, mergo.WithSliceDeepCopy)
		} else if appendSlice {
			opts = append(opts, mergo.WithAppendSlice)
		}

		if err = mergo.Merge(&merged, dataCurrent, opts...); err != nil {
			return nil, fmt.Errorf("%w: %v", errUtils.ErrMerge, err)
		}
	}

	return merged, nil
}

// Merge takes a list of maps as input, deep-merges the items in the order they are
// defined in the list, and returns a single map with the merged contents.
// The list merge strategy comes from the configuration (`settings.list_merge_strategy`):
// `replace` (default), `append`, or `merge`.
func Merge(
	cfg *schema.Configuration,
	inputs []map[string]any,
) (map[string]any, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: %w", errUtils.ErrMerge, errUtils.ErrNilConfig)
	}

	listMergeStrategy := cfg.Settings.ListMergeStrategy
	if listMergeStrategy == "" {
		listMergeStrategy = ListMergeStrategyReplace
	}

	if listMergeStrategy != ListMergeStrategyReplace &&
		listMergeStrategy != ListMergeStrategyAppend &&
		listMergeStrategy != ListMergeStrategyMerge {
		return nil, fmt.Errorf("%w: %w '%s'. Supported list merge strategies are: %s, %s, %s",
			errUtils.ErrMerge,
			errUtils.ErrInvalidListMergeStrategy,
			listMergeStrategy,
			ListMergeStrategyReplace,
			ListMergeStrategyAppend,
			ListMergeStrategyMerge,
		)
	}

	sliceDeepCopy := false
	appendSlice := false

	switch listMergeStrategy {
	case ListMergeStrategyMerge:
		sliceDeepCopy = true
	case ListMergeStrategyAppend:
		appendSlice = true
	}

	return MergeWithOptions(inputs, appendSlice, sliceDeepCopy)
}
