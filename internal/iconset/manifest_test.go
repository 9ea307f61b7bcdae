package iconset

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"
)

func TestManifest(t *testing.T) {
	b, err := Manifest()
	if err != nil {
		t.Fatal(err)
	}

	var m manifestIcons
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, b)
	}
	for _, size := range Sizes {
		key := FileName(size)
		if got := m.Icons[strconv.Itoa(size)]; got != key {
			t.Errorf("icons[%d] = %q, want %q", size, got, key)
		}
		if got := m.Action.DefaultIcon[strconv.Itoa(size)]; got != key {
			t.Errorf("action.default_icon[%d] = %q, want %q", size, got, key)
		}
	}
	if len(m.Icons) != len(Sizes) {
		t.Errorf("icons has %d entries, want %d", len(m.Icons), len(Sizes))
	}

	if !bytes.Contains(b, []byte("\n  \"icons\"")) {
		t.Errorf("manifest is not pretty printed:\n%s", b)
	}
}
