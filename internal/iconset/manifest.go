package iconset

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/pretty"
)

type manifestIcons struct {
	Icons  map[string]string `json:"icons"`
	Action struct {
		DefaultIcon map[string]string `json:"default_icon"`
	} `json:"action"`
}

// Manifest returns the "icons" and "action.default_icon" entries of the
// extension manifest for the generated files, pretty printed.
func Manifest() ([]byte, error) {
	var m manifestIcons
	m.Icons = make(map[string]string, len(Sizes))
	m.Action.DefaultIcon = make(map[string]string, len(Sizes))
	for _, size := range Sizes {
		key := strconv.Itoa(size)
		m.Icons[key] = FileName(size)
		m.Action.DefaultIcon[key] = FileName(size)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}
