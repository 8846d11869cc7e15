package site

import (
	"embed"
	"io/fs"
)

//go:embed assets/docker-compose.yml assets/nginx/default.conf assets/public/index.php
var assets embed.FS

// Artifact is one generated file, relative to the site root.
type Artifact struct {
	Path string
	Mode fs.FileMode
}

const (
	ProxyConfigPath = "nginx/default.conf"
	ScriptPath      = "public/index.php"
	DescriptorPath  = "docker-compose.yml"
)

// Artifacts lists the generated files in the order they are written.
var Artifacts = []Artifact{
	{Path: ProxyConfigPath, Mode: 0644},
	{Path: ScriptPath, Mode: 0644},
	{Path: DescriptorPath, Mode: 0644},
}

// Content returns the fixed bytes for an artifact path.
func Content(path string) ([]byte, error) {
	return assets.ReadFile("assets/" + path)
}
