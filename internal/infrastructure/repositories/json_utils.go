package repositories

import "encoding/json"

// String slices (skills, tags) are stored as JSON text columns so the
// schema stays portable between postgres and the sqlite test driver.

func encodeStrings(ss []string) string {
	if len(ss) == 0 {
		return "[]"
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(s string) []string {
	if s == "" {
		return nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(s), &ss); err != nil {
		return nil
	}
	if len(ss) == 0 {
		return nil
	}
	return ss
}
