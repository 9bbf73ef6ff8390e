package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidManifest wraps every validation failure of Load.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest is a loaded ddl.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
	Doc     DocConfig     `toml:"doc"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// CheckConfig holds defaults for `ddl check`; flags override them.
type CheckConfig struct {
	Level          string   `toml:"level"`           // surface | core | auto
	MaxDiagnostics int      `toml:"max_diagnostics"` // 0 = CLI default
	Jobs           int      `toml:"jobs"`
	Exclude        []string `toml:"exclude"` // glob patterns relative to Root
}

type DocConfig struct {
	Out string `toml:"out"` // directory for generated Markdown
}

var validLevels = []string{"auto", "surface", "core"}

// Load reads the nearest ddl.toml above startDir. ok is false when none
// exists.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]: %w", path, ErrInvalidManifest)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name: %w", path, ErrInvalidManifest)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s: %w", path, undecoded[0], ErrInvalidManifest)
	}
	if meta.IsDefined("check", "level") {
		ok := false
		for _, l := range validLevels {
			ok = ok || cfg.Check.Level == l
		}
		if !ok {
			return Config{}, fmt.Errorf("%s: [check].level must be one of %s: %w", path, strings.Join(validLevels, "|"), ErrInvalidManifest)
		}
	} else {
		cfg.Check.Level = "auto"
	}
	if cfg.Check.MaxDiagnostics < 0 || cfg.Check.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [check] limits must not be negative: %w", path, ErrInvalidManifest)
	}
	for _, pat := range cfg.Check.Exclude {
		if _, err := filepath.Match(pat, ""); err != nil {
			return Config{}, fmt.Errorf("%s: bad exclude pattern %q: %w", path, pat, ErrInvalidManifest)
		}
	}
	return cfg, nil
}

// Excluded reports whether rel (slash-separated, relative to Root) matches
// one of the exclude patterns.
func (c CheckConfig) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pat := range c.Exclude {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Init writes a fresh ddl.toml for package name into dir. An existing
// manifest is never overwritten.
func Init(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(dir)
	}
	path := filepath.Join(dir, ManifestName)
	data, err := Encode(Config{
		Package: PackageConfig{Name: name},
		Check:   CheckConfig{Level: "auto"},
		Doc:     DocConfig{Out: "docs"},
	})
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}
