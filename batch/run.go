// This file is part of padnotes.
//
// padnotes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padnotes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padnotes.  If not, see <https://www.gnu.org/licenses/>.

package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome of a function run for a single file.
type Outcome[R any] struct {
	File   string
	Result R
	Err    error
}

// Run calls the function for every file, with no more than limit calls
// running at once. A limit of less than one means no limit.
//
// The error returned by the function is recorded in the outcome for that
// file. Run() only returns an error if the context is cancelled, in which
// case files that were not started have the context's error as their
// outcome.
func Run[R any](ctx context.Context, files []string, limit int, f func(ctx context.Context, file string) (R, error)) ([]Outcome[R], error) {
	outcomes := make([]Outcome[R], len(files))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, file := range files {
		outcomes[i].File = file

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return err
			}
			outcomes[i].Result, outcomes[i].Err = f(ctx, file)
			return nil
		})
	}

	return outcomes, g.Wait()
}
