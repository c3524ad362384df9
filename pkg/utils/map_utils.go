package utils

// DeepCopyMap returns a deep copy of the map by round-tripping it through
// YAML, so the copy shares no references with the original and only holds
// YAML-native value types.
func DeepCopyMap(m map[string]any) (map[string]any, error) {
	if len(m) == 0 {
		return map[string]any{}, nil
	}
	y, err := ConvertToYAML(m)
	if err != nil {
		return nil, err
	}
	return UnmarshalYAML[map[string]any](y)
}
