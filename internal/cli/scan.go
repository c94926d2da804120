package cli

import (
	"context"
	"fmt"

	"github.com/ntndev/skinscan/internal/common"
	"github.com/ntndev/skinscan/internal/imagex"
)

// Scan runs the full analysis flow: import the image into the app's image
// directory, submit it to the analyzer, and store the resulting record.
func (a *App) Scan(ctx context.Context) error {
	st := a.session.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return common.ErrNotAuthenticated
	}

	path, err := GetSimpleText(a.reader, "Path to the skin photo", a.out)
	if err != nil {
		return err
	}

	imageRef, err := imagex.Import(path, a.config.ImageDir)
	if err != nil {
		fmt.Fprintf(a.out, "Could not read the image: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Analyzing...")
	results, err := a.analyzer.Analyze(ctx, imageRef)
	if err != nil {
		fmt.Fprintf(a.out, "Analysis failed: %v\n", err)
		return err
	}

	rec := a.history.AddScan(ctx, st.User.ID, imageRef, results)

	fmt.Fprintf(a.out, "Scan %s stored. Probable matches:\n", rec.ID)
	a.printDetections(rec.Diseases)
	return nil
}
