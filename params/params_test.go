package params

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestMapPathDefault(t *testing.T) {
	t.Setenv(EnvMapPath, "")
	p, err := LoadFiles()
	if err != nil {
		t.Fatal(err)
	}
	if got := p.MapPath(); got != DefaultMapPath {
		t.Errorf("MapPath() = %q, want %q", got, DefaultMapPath)
	}
}

func TestMapPathFromFile(t *testing.T) {
	t.Setenv(EnvMapPath, "")
	file := writeConfig(t, "x12.yaml", "map_path: /opt/x12/maps\n")
	p, err := LoadFiles(file)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.MapPath(); got != "/opt/x12/maps" {
		t.Errorf("MapPath() = %q, want %q", got, "/opt/x12/maps")
	}
}

func TestLaterFileOverrides(t *testing.T) {
	t.Setenv(EnvMapPath, "")
	system := writeConfig(t, "x12.yaml", "map_path: /usr/share/maps\n")
	user := writeConfig(t, ".x12.yaml", "map_path: /home/u/maps\n")
	p, err := LoadFiles(system, user)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.MapPath(); got != "/home/u/maps" {
		t.Errorf("MapPath() = %q, want %q", got, "/home/u/maps")
	}
}

func TestEnvOverrides(t *testing.T) {
	file := writeConfig(t, "x12.yaml", "map_path: /usr/share/maps\n")
	t.Setenv(EnvMapPath, "/env/maps")
	p, err := LoadFiles(file)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.MapPath(); got != "/env/maps" {
		t.Errorf("MapPath() = %q, want %q", got, "/env/maps")
	}
}

func TestMissingFileSkipped(t *testing.T) {
	t.Setenv(EnvMapPath, "")
	file := writeConfig(t, "x12.yaml", "map_path: /opt/x12/maps\n")
	p, err := LoadFiles(filepath.Join(t.TempDir(), "absent.yaml"), file)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.MapPath(); got != "/opt/x12/maps" {
		t.Errorf("MapPath() = %q, want %q", got, "/opt/x12/maps")
	}
}

func TestBadConfig(t *testing.T) {
	file := writeConfig(t, "x12.yaml", "map_path: [\n")
	if _, err := LoadFiles(file); err == nil {
		t.Error("LoadFiles accepted malformed yaml")
	}
}
