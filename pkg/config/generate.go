package config

import (
	"bytes"

	toml "github.com/pelletier/go-toml/v2"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

const generatedHeader = `# srpkg configuration.
# Settings here override the built-in defaults; SRPKG_* environment
# variables override both.

`

// Generate renders cfg as a .srpkg.toml document with a leading comment
// block, suitable for writing next to the packages it governs.
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, srpkgerr.Wrap(err, srpkgerr.ErrConfigParse, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
