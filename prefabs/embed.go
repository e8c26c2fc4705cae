package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// Dir is where on-disk overrides of the embedded prefabs live.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a prefab from Dir when present and falls back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
