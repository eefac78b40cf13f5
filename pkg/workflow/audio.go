package workflow

import (
	"encoding/base64"
	"os"
)

// EncodeAudio returns the base64 content of the file at path.
// When the file cannot be read it returns MockAudio and mocked=true.
func EncodeAudio(path string) (encoded string, mocked bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MockAudio, true
	}
	return base64.StdEncoding.EncodeToString(data), false
}
