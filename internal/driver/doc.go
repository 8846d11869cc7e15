// Package driver spells the four lifecycle verbs for each supported
// container orchestrator.
//
// wpsite never manages containers itself. It runs the orchestrator inside
// the site root, where docker-compose.yml lives:
//
//	Up     <cmd> up -d
//	Start  <cmd> start
//	Stop   <cmd> stop
//	Down   <cmd> down -v
//
// Supported orchestrators:
//
//	docker-compose   the standalone v1 binary (default)
//	docker           the v2 plugin, invoked as "docker compose"
//	podman-compose   podman's compose implementation
//
// Drivers are created by name with New, or with NewWithExecutor in tests:
//
//	mockExec := &executor.MockExecutor{}
//	drv, _ := driver.NewWithExecutor("docker-compose", mockExec)
//	err := drv.Up(ctx, "/srv/wordpress-docker")
//
// A non-zero exit is returned as a *CommandError holding the child's combined
// output unchanged.
package driver
