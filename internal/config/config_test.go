package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	t.Run("New", func(t *testing.T) {
		cfg := New()
		if cfg.Orchestrator != "docker-compose" {
			t.Errorf("expected docker-compose, got %s", cfg.Orchestrator)
		}
		if cfg.Sites == nil {
			t.Error("Sites should be initialized")
		}
	})

	t.Run("LoadNonexistent", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Orchestrator != DefaultOrchestrator {
			t.Errorf("expected default orchestrator, got %s", cfg.Orchestrator)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		cfg := New()
		cfg.Orchestrator = "podman-compose"
		cfg.HostsFile = "/tmp/hosts"
		cfg.RecordSite("test.local", "/srv/wordpress-docker", time.Now())

		if err := cfg.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		path := filepath.Join(tempDir, ".config", "wpsite", "config.yaml")
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file was not created: %v", err)
		}

		loaded, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.Orchestrator != "podman-compose" {
			t.Errorf("expected podman-compose, got %s", loaded.Orchestrator)
		}
		if loaded.HostsFile != "/tmp/hosts" {
			t.Errorf("expected /tmp/hosts, got %s", loaded.HostsFile)
		}
		site, ok := loaded.Sites["test.local"]
		if !ok {
			t.Fatal("site not found after reload")
		}
		if site.Root != "/srv/wordpress-docker" || !site.Enabled {
			t.Errorf("unexpected site %+v", site)
		}
	})
}

func TestLoad_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without HOME should fall back to defaults: %v", err)
	}
	if cfg.Orchestrator != DefaultOrchestrator || len(cfg.Sites) != 0 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if err := cfg.Save(); err == nil {
		t.Error("Save without HOME should fail")
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty orchestrator falls back to default", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(path, []byte("base_dir: /srv\n"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if cfg.Orchestrator != DefaultOrchestrator {
			t.Errorf("expected default orchestrator, got %q", cfg.Orchestrator)
		}
		if cfg.BaseDir != "/srv" {
			t.Errorf("expected /srv, got %q", cfg.BaseDir)
		}
		if cfg.Sites == nil {
			t.Error("Sites should be initialized")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("sites: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestResolve(t *testing.T) {
	cfg := New()

	hosts, err := cfg.ResolveHostsFile()
	if err == nil && hosts == "" {
		t.Error("expected platform hosts file")
	}

	cfg.HostsFile = "/custom/hosts"
	if hosts, _ := cfg.ResolveHostsFile(); hosts != "/custom/hosts" {
		t.Errorf("expected override, got %s", hosts)
	}

	base, err := cfg.ResolveBaseDir()
	if err != nil {
		t.Fatalf("ResolveBaseDir failed: %v", err)
	}
	wd, _ := os.Getwd()
	if base != wd {
		t.Errorf("expected %s, got %s", wd, base)
	}

	cfg.BaseDir = "relative"
	base, _ = cfg.ResolveBaseDir()
	if !filepath.IsAbs(base) {
		t.Errorf("expected absolute base dir, got %s", base)
	}
}

func TestSiteRegistry(t *testing.T) {
	cfg := New()
	created := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	cfg.RecordSite("b.local", "/srv/b", created)
	cfg.RecordSite("a.local", "/srv/a", created)

	if !cfg.SetEnabled("a.local", false) {
		t.Fatal("SetEnabled should find a.local")
	}
	if cfg.Sites["a.local"].Enabled {
		t.Error("a.local should be disabled")
	}
	if cfg.SetEnabled("missing.local", true) {
		t.Error("SetEnabled should report unknown site")
	}

	// re-recording keeps the original creation time
	cfg.RecordSite("a.local", "/srv/a2", created.Add(time.Hour))
	if got := cfg.Sites["a.local"]; !got.CreatedAt.Equal(created) || got.Root != "/srv/a2" || !got.Enabled {
		t.Errorf("unexpected entry after re-record: %+v", got)
	}

	if !cfg.RemoveSite("a.local") || cfg.RemoveSite("a.local") {
		t.Error("RemoveSite should succeed once")
	}
}
