package ui

import "snake-arcade/game/types"

// DrainKeys pulls key codes from next until it returns 0 and maps them to
// game keys in the order they were pressed. Unmapped codes are dropped.
func DrainKeys(next func() int32, mapping map[int32]types.Key) []types.Key {
	var keys []types.Key
	for code := next(); code != 0; code = next() {
		if k, ok := mapping[code]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
