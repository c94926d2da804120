package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ntndev/skinscan/internal/catalog"
	"github.com/ntndev/skinscan/internal/common"
	"github.com/ntndev/skinscan/internal/models"
)

// History lists the current user's scans, newest first. The store holds
// records for every local account; filtering by owner happens here.
func (a *App) History(ctx context.Context) error {
	st := a.session.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return common.ErrNotAuthenticated
	}

	var count int
	for _, rec := range a.history.Scans() {
		if rec.UserID != st.User.ID {
			continue
		}
		count++
		top := "no matches"
		if len(rec.Diseases) > 0 {
			top = fmt.Sprintf("%s (%.0f%%)", rec.Diseases[0].Name, rec.Diseases[0].Probability*100)
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n", rec.ID, rec.Date.Format("2006-01-02 15:04"), top)
	}
	if count == 0 {
		fmt.Fprintln(a.out, "No scans yet. Run 'scan' to analyze a photo.")
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	rec, err := a.promptForScan()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Scan %s\n", rec.ID)
	fmt.Fprintf(a.out, "Date:  %s\n", rec.Date.Format("January 2, 2006 15:04"))
	fmt.Fprintf(a.out, "Image: %s\n", rec.ImageURI)
	fmt.Fprintln(a.out, "Probable matches:")
	a.printDetections(rec.Diseases)
	if rec.Notes != "" {
		fmt.Fprintf(a.out, "Notes:\n%s\n", rec.Notes)
	}
	return nil
}

func (a *App) Note(ctx context.Context) error {
	rec, err := a.promptForScan()
	if err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes for this scan", a.out)
	if err != nil {
		return err
	}

	if !a.history.UpdateNotes(ctx, rec.ID, notes) {
		fmt.Fprintln(a.out, "Scan not found.")
		return nil
	}
	fmt.Fprintln(a.out, "Notes saved.")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	rec, err := a.promptForScan()
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, "Delete this scan? This cannot be undone (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if a.history.DeleteScan(ctx, rec.ID) {
		fmt.Fprintln(a.out, "Scan deleted.")
	} else {
		fmt.Fprintln(a.out, "Scan not found.")
	}
	return nil
}

// promptForScan asks for a record identifier and resolves it among the
// current user's scans. Commands built on it (show, note, delete) therefore
// require a session and never touch another account's records.
func (a *App) promptForScan() (*models.ScanRecord, error) {
	st := a.session.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil, common.ErrNotAuthenticated
	}

	id, err := GetSimpleText(a.reader, "Scan id", a.out)
	if err != nil {
		return nil, err
	}
	for _, rec := range a.history.Scans() {
		if rec.ID == id && rec.UserID == st.User.ID {
			return &rec, nil
		}
	}
	fmt.Fprintln(a.out, "Scan not found.")
	return nil, common.ErrNotFound
}

func (a *App) printDetections(detections []models.Detection) {
	for _, d := range detections {
		line := fmt.Sprintf("  %-24s %4.0f%%", d.Name, d.Probability*100)
		if c, ok := catalog.Get(d.ConditionID); ok {
			line += "  " + c.Description
		}
		fmt.Fprintln(a.out, line)
	}
}
