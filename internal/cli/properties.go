package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
)

func parseID(args []string, usage string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("property id must be a number, got %q", args[0])
	}
	return id, nil
}

func (a *App) List(ctx context.Context) error {
	props, err := a.properties.ListAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d properties found\n", len(props))
	for _, p := range props {
		fmt.Fprintf(a.out, "[%d] %s, $%d/month, %s beds, %s\n",
			p.ID, p.Title, p.Price, p.Beds, p.Address)
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	p, err := a.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No property with id %d\n", id)
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s\nPrice: $%d/month\nAddress: %s\nType: %s\nBedrooms: %s\nBathrooms: %g\nSquare Feet: %d\nAmenities: %s\nStatus: %s\n",
		p.Title, p.Price, p.Address, p.Type, p.Beds, p.Baths, p.Sqft,
		strings.Join(p.Amenities, ", "), p.EffectiveStatus())

	return a.dashboard.MarkViewed(ctx, p.ID)
}

func (a *App) Save(ctx context.Context, args []string) error {
	red, err := a.requireRenter(ctx)
	if err != nil || red == nil {
		return err
	}
	id, err := parseID(args, "save <id>")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	next, err := a.dashboard.AddToFavorites(ctx, red.ID, id)
	if err != nil {
		if common.IsValidation(err) {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Saved. You now have %d favorite(s)\n", len(next))
	return nil
}

func (a *App) Unsave(ctx context.Context, args []string) error {
	red, err := a.requireRenter(ctx)
	if err != nil || red == nil {
		return err
	}
	id, err := parseID(args, "unsave <id>")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	next, err := a.dashboard.RemoveFromFavorites(ctx, red.ID, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Property removed from favorites (%d left)\n", len(next))
	return nil
}

func (a *App) Contact(ctx context.Context, args []string) error {
	red, err := a.requireLogin(ctx)
	if err != nil || red == nil {
		return err
	}
	id, err := parseID(args, "contact <id>")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	if _, err := a.properties.FindByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No property with id %d\n", id)
			return nil
		}
		return err
	}

	text, err := GetSimpleText(a.reader, "Message to the owner", a.out)
	if err != nil {
		return err
	}

	if _, err := a.messages.Send(ctx, red.ID, id, text); err != nil {
		if common.IsValidation(err) {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
		return err
	}
	fmt.Fprintln(a.out, "Message sent")
	return nil
}

func (a *App) requireLogin(ctx context.Context) (*models.RedactedUser, error) {
	red, err := a.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if red == nil {
		fmt.Fprintln(a.out, "Please login first")
		return nil, nil
	}
	return red, nil
}

func (a *App) requireRenter(ctx context.Context) (*models.RedactedUser, error) {
	red, err := a.requireLogin(ctx)
	if err != nil || red == nil {
		return red, err
	}
	if red.UserType != models.UserTypeRenter {
		fmt.Fprintln(a.out, "Only renters can manage favorites")
		return nil, nil
	}
	return red, nil
}
