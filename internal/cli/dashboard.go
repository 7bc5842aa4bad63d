package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rentalconnect/internal/models"
)

func (a *App) Dashboard(ctx context.Context) error {
	red, err := a.requireLogin(ctx)
	if err != nil || red == nil {
		return err
	}

	if red.UserType == models.UserTypeOwner {
		return a.ownerDashboard(ctx, red)
	}
	return a.renterDashboard(ctx, red)
}

func (a *App) renterDashboard(ctx context.Context, red *models.RedactedUser) error {
	view, err := a.dashboard.ForRenter(ctx, red)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Hello, %s!\n", red.FirstName)
	fmt.Fprintf(a.out, "Favorites: %d | Viewed: %d | Messages: %d\n",
		view.FavoritesCount, view.ViewedCount, view.MessagesCount)

	if len(view.SavedProperties) == 0 {
		fmt.Fprintln(a.out, "No saved properties yet")
		return nil
	}
	fmt.Fprintln(a.out, "Saved properties:")
	for _, p := range view.SavedProperties {
		fmt.Fprintf(a.out, "  [%d] %s, $%d/month, %s\n", p.ID, p.Title, p.Price, p.Address)
	}
	return nil
}

func (a *App) ownerDashboard(ctx context.Context, red *models.RedactedUser) error {
	view, err := a.dashboard.ForOwner(ctx, red)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Hello, %s!\n", red.FirstName)
	fmt.Fprintf(a.out, "Properties: %d | Active listings: %d | Inquiries: %d\n",
		view.Stats.TotalProperties, view.Stats.ActiveListings, view.Stats.TotalInquiries)

	if len(view.OwnedProperties) == 0 {
		fmt.Fprintln(a.out, "No properties listed yet")
		return nil
	}
	for _, p := range view.OwnedProperties {
		fmt.Fprintf(a.out, "  [%d] %s, $%d/month, views: %d, inquiries: %d, %s\n",
			p.ID, p.Title, p.Price, p.Views, p.Inquiries, p.EffectiveStatus())
	}
	return nil
}

// Draft shows the stored listing draft, then interactively replaces it.
func (a *App) Draft(ctx context.Context) error {
	red, err := a.requireLogin(ctx)
	if err != nil || red == nil {
		return err
	}
	if red.UserType != models.UserTypeOwner {
		fmt.Fprintln(a.out, "Only owners can prepare listings")
		return nil
	}

	if prev, err := a.properties.LastDraft(ctx); err != nil {
		return err
	} else if prev != nil {
		fmt.Fprintf(a.out, "Stored draft: %s, $%d/month, %s\n", prev.Title, prev.Price, prev.Address)
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	priceStr, err := GetSimpleText(a.reader, "Price per month", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil {
		fmt.Fprintln(a.out, "Price must be a number")
		return nil
	}
	address, err := GetSimpleText(a.reader, "Address", a.out)
	if err != nil {
		return err
	}
	propType, err := GetSimpleText(a.reader, "Type (Apartment/House/Studio/Villa)", a.out)
	if err != nil {
		return err
	}
	amenities, err := GetSimpleText(a.reader, "Amenities (comma-separated)", a.out)
	if err != nil {
		return err
	}

	d := &models.PropertyDraft{
		Title:   title,
		Price:   price,
		Address: address,
		Type:    propType,
	}
	for _, s := range strings.Split(amenities, ",") {
		if s = strings.TrimSpace(s); s != "" {
			d.Amenities = append(d.Amenities, s)
		}
	}

	if err := a.properties.SaveDraft(ctx, d); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Draft saved. It will be visible to renters after review.")
	return nil
}

// Alerts sets the rental alert preferences when arguments are given,
// otherwise prints the stored ones.
func (a *App) Alerts(ctx context.Context, args []string) error {
	red, err := a.requireLogin(ctx)
	if err != nil || red == nil {
		return err
	}

	if len(args) == 0 {
		prefs, err := a.dashboard.Alerts(ctx)
		if err != nil {
			return err
		}
		if prefs == "" {
			fmt.Fprintln(a.out, "No alerts set. Usage: alerts <preferences>")
			return nil
		}
		fmt.Fprintf(a.out, "Alert preferences: %s\n", prefs)
		return nil
	}

	if err := a.dashboard.SetAlerts(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Alerts set! We'll notify you about matching properties.")
	return nil
}
