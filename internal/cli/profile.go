package cli

import (
	"context"
	"fmt"

	"github.com/ntndev/skinscan/internal/common"
	"github.com/ntndev/skinscan/internal/models"
)

func (a *App) Profile(ctx context.Context) error {
	st := a.session.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return common.ErrNotAuthenticated
	}

	u := st.User
	fmt.Fprintf(a.out, "Name:       %s\n", u.Name)
	fmt.Fprintf(a.out, "Email:      %s\n", u.Email)
	fmt.Fprintf(a.out, "Phone:      %s\n", orDash(u.Phone))
	fmt.Fprintf(a.out, "Birth date: %s\n", orDash(u.BirthDate))
	fmt.Fprintf(a.out, "Avatar:     %s\n", orDash(u.AvatarURL))
	return nil
}

// EditProfile prompts for each mutable field; blank input keeps the current
// value. Email is not offered: it cannot change after registration.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return common.ErrNotAuthenticated
	}

	var upd models.ProfileUpdate

	name, err := GetSimpleText(a.reader, "Display name (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		upd.Name = &name
	}

	phone, err := GetSimpleText(a.reader, "Phone (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if phone != "" {
		upd.Phone = &phone
	}

	birthDate, err := GetSimpleText(a.reader, "Birth date YYYY-MM-DD (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if birthDate != "" {
		upd.BirthDate = &birthDate
	}

	if err := a.session.UpdateProfile(ctx, upd); err != nil {
		fmt.Fprintf(a.out, "Profile update failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
