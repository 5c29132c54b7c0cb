package jsontree

import "os"

// ParseFile reads the entire file at path into memory and parses it as
// strict JSON.
func ParseFile(path string) (*Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(b)
}

// ParseFileWithComments is ParseFile under the relaxed, comment-tolerant
// grammar.
func ParseFileWithComments(path string) (*Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytesWithComments(b)
}

// SerializeToFile serializes v to compact JSON text and writes it to path,
// creating or truncating the file as needed.
func SerializeToFile(v *Value, path string) error {
	text, err := Serialize(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
