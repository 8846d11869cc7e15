// Package config holds wpsite settings and the registry of created sites,
// stored as YAML at ~/.config/wpsite/config.yaml.
//
// Example config.yaml:
//
//	orchestrator: docker-compose
//	base_dir: /home/me/sites
//	hosts_file: /etc/hosts
//	sites:
//	  test.local:
//	    name: test.local
//	    root: /home/me/sites/wordpress-docker
//	    enabled: true
//	    created_at: 2026-10-18T10:00:00Z
//
// A missing file is not an error; Load returns the defaults from New.
// The registry is informational: the orchestrator remains the source of truth
// for whether a site's containers are running.
package config
