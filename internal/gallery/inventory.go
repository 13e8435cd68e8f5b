package gallery

import (
	"context"
	"fmt"

	"github.com/handiism/gallery-exporter/internal/model"
	"golang.org/x/sync/errgroup"
)

// Inventory probes every photo returned by Photos and reports its size,
// format and dimensions, in the same order.
//
// Photos are only read, never modified. A photo whose header cannot be
// decoded is reported with PhotoInfo.Err set and a warning event; only a
// cancelled context makes Inventory fail.
func (g *Gallery) Inventory(ctx context.Context) ([]model.PhotoInfo, error) {
	photos := g.Photos()
	infos := make([]model.PhotoInfo, len(photos))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.probeLimit)

	for i, path := range photos {
		eg.Go(func() error {
			info, err := g.imageService.Probe(ctx, g.fs, path)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				g.progress(ProgressEvent{
					Message: fmt.Sprintf("Could not read image header of %s: %v", info.Name, err),
					Level:   LevelWarning,
					Path:    path,
				})
			}
			infos[i] = info
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}
