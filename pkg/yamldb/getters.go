package yamldb

import "github.com/spf13/cast"

// Typed getters return the zero value when the key is missing or the stored
// value cannot be converted.

// GetString returns the value at the dotted path as a string.
func (db *DB) GetString(key string) string {
	value, err := db.Get(key)
	if err != nil {
		return ""
	}
	return cast.ToString(value)
}

// GetInt returns the value at the dotted path as an int.
func (db *DB) GetInt(key string) int {
	value, err := db.Get(key)
	if err != nil {
		return 0
	}
	return cast.ToInt(value)
}

// GetBool returns the value at the dotted path as a bool.
func (db *DB) GetBool(key string) bool {
	value, err := db.Get(key)
	if err != nil {
		return false
	}
	return cast.ToBool(value)
}

// GetFloat64 returns the value at the dotted path as a float64.
func (db *DB) GetFloat64(key string) float64 {
	value, err := db.Get(key)
	if err != nil {
		return 0
	}
	return cast.ToFloat64(value)
}

// GetStringMap returns the value at the dotted path as a map of string keys.
func (db *DB) GetStringMap(key string) map[string]any {
	value, err := db.Get(key)
	if err != nil {
		return nil
	}
	return cast.ToStringMap(value)
}

// GetStringSlice returns the value at the dotted path as a string slice.
func (db *DB) GetStringSlice(key string) []string {
	value, err := db.Get(key)
	if err != nil {
		return nil
	}
	return cast.ToStringSlice(value)
}
