package graphics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/fufuok/cmap"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var ErrFontNotFound = errors.New("font not found")

// fontMu guards the variables below, not the map contents.
var fontMu sync.RWMutex

var (
	fontPaths      = cmap.NewOf[string, string]() // key: normalized family name, "" if missing
	fontSearchDirs []string
	logger         = hclog.NewNullLogger()
)

// SetFontSearchDirs overrides the directories searched by FindSystemFont.
// Passing no directories restores the platform defaults.
func SetFontSearchDirs(dirs ...string) {
	fontMu.Lock()
	defer fontMu.Unlock()
	fontSearchDirs = dirs
	fontPaths = cmap.NewOf[string, string]()
}

// SetLogger sets the logger used for font resolution messages.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	fontMu.Lock()
	defer fontMu.Unlock()
	logger = l
}

func getLogger() hclog.Logger {
	fontMu.RLock()
	defer fontMu.RUnlock()
	return logger
}

// FindSystemFont returns the path of a TrueType file whose name matches family,
// e.g. "Arial" matches Arial.ttf and arial.ttf. Misses are remembered too,
// until the next SetFontSearchDirs.
func FindSystemFont(family string) (string, error) {
	key := normalizeFontName(family)
	if key == "" {
		return "", fmt.Errorf("%w: empty family name", ErrFontNotFound)
	}

	fontMu.RLock()
	paths, dirs := fontPaths, fontSearchDirs
	fontMu.RUnlock()

	if p, ok := paths.Get(key); ok {
		if p == "" {
			return "", fmt.Errorf("%w: %q", ErrFontNotFound, family)
		}
		return p, nil
	}

	if len(dirs) == 0 {
		dirs = defaultFontDirs()
	}
	for _, dir := range dirs {
		if p, ok := searchFontDir(dir, key); ok {
			paths.Set(key, p)
			return p, nil
		}
	}
	paths.Set(key, "")
	return "", fmt.Errorf("%w: %q", ErrFontNotFound, family)
}

// findBoldFont looks for the bold face of family under the usual file names:
// "Arial Bold.ttf" or "Arial-Bold.ttf", then "arialbd.ttf".
func findBoldFont(family string) (string, error) {
	p, err := FindSystemFont(family + " Bold")
	if err == nil {
		return p, nil
	}
	return FindSystemFont(family + "bd")
}

// loadFontFace returns a face for family at the given size in points (1pt = 1px).
// If the family cannot be found or loaded, the built-in 7x13 face is returned
// and ok is false.
func loadFontFace(family string, points float64) (face font.Face, ok bool) {
	if points <= 0 {
		getLogger().Debug("font size too small, using default face", "family", family, "points", points)
		return basicfont.Face7x13, false
	}
	p, err := FindSystemFont(family)
	if err != nil {
		getLogger().Debug("using default face", "family", family, "error", err)
		return basicfont.Face7x13, false
	}
	face, err = gg.LoadFontFace(p, points)
	if err != nil {
		getLogger().Debug("using default face", "family", family, "path", p, "error", err)
		return basicfont.Face7x13, false
	}
	return face, true
}

func searchFontDir(dir, key string) (string, bool) {
	var found string
	filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		// unreadable entries are skipped
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, ".ttf") {
			return nil
		}
		if normalizeFontName(strings.TrimSuffix(name, ext)) == key {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}

func normalizeFontName(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(name))
}

func defaultFontDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		winDir := os.Getenv("WINDIR")
		if winDir == "" {
			winDir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(winDir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs,
			"/Library/Fonts",
			"/System/Library/Fonts",
			"/System/Library/Fonts/Supplemental",
		)
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local", "share", "fonts"),
			)
		}
	}
	return dirs
}
