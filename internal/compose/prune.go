// Where: internal/compose/prune.go
// What: Project-scoped Docker resource removal.
// Why: Provide system-prune-like cleanup limited to one compose project.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
)

// PruneOptions configures project-scoped cleanup behavior.
type PruneOptions struct {
	Project   string
	AllImages bool
}

// PruneReport summarizes what was deleted during prune.
type PruneReport struct {
	ContainersDeleted []string
	NetworksDeleted   []string
	VolumesDeleted    []string
	ImagesDeleted     []image.DeleteResponse
	SpaceReclaimed    uint64
}

// PruneProject deletes resources scoped to a compose project label:
// stopped containers, unused networks, unused volumes, and images
// (dangling only unless AllImages is set).
func PruneProject(ctx context.Context, client DockerClient, opts PruneOptions) (PruneReport, error) {
	if client == nil {
		return PruneReport{}, fmt.Errorf("docker client is nil")
	}
	project := strings.TrimSpace(opts.Project)
	if project == "" {
		return PruneReport{}, fmt.Errorf("compose project is required")
	}

	report := PruneReport{}
	projectFilter := filters.NewArgs(filters.Arg("label", fmt.Sprintf("%s=%s", composeProjectLabel, project)))

	containers, err := client.ContainersPrune(ctx, projectFilter)
	if err != nil {
		return report, err
	}
	report.ContainersDeleted = append(report.ContainersDeleted, containers.ContainersDeleted...)
	report.SpaceReclaimed += containers.SpaceReclaimed

	networks, err := client.NetworksPrune(ctx, projectFilter)
	if err != nil {
		return report, err
	}
	report.NetworksDeleted = append(report.NetworksDeleted, networks.NetworksDeleted...)

	volumes, err := client.VolumesPrune(ctx, projectFilter)
	if err != nil {
		return report, err
	}
	report.VolumesDeleted = append(report.VolumesDeleted, volumes.VolumesDeleted...)
	report.SpaceReclaimed += volumes.SpaceReclaimed

	images, err := client.ImagesPrune(ctx, imagePruneFilters(project, opts.AllImages))
	if err != nil {
		return report, err
	}
	report.ImagesDeleted = append(report.ImagesDeleted, images.ImagesDeleted...)
	report.SpaceReclaimed += images.SpaceReclaimed

	return report, nil
}

// PruneProjectVolumes deletes only the unused volumes labelled with the
// compose project, returning their names and reclaimed bytes.
func PruneProjectVolumes(ctx context.Context, client DockerClient, project string) ([]string, uint64, error) {
	if client == nil {
		return nil, 0, fmt.Errorf("docker client is nil")
	}
	project = strings.TrimSpace(project)
	if project == "" {
		return nil, 0, fmt.Errorf("compose project is required")
	}

	projectFilter := filters.NewArgs(filters.Arg("label", fmt.Sprintf("%s=%s", composeProjectLabel, project)))
	report, err := client.VolumesPrune(ctx, projectFilter)
	if err != nil {
		return nil, 0, err
	}
	return report.VolumesDeleted, report.SpaceReclaimed, nil
}

func imagePruneFilters(project string, all bool) filters.Args {
	pruneFilters := filters.NewArgs(filters.Arg("label", fmt.Sprintf("%s=%s", composeProjectLabel, project)))
	if all {
		pruneFilters.Add("dangling", "false")
	} else {
		pruneFilters.Add("dangling", "true")
	}
	return pruneFilters
}
