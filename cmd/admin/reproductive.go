package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"animal-control-admin/internal/domain/directory"
	"animal-control-admin/internal/domain/reproductive"
	"animal-control-admin/internal/modal"
)

func reproductiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reproductive",
		Aliases: []string{"repro"},
		Short:   "Spay / neuter records",
	}
	cmd.AddCommand(
		reproListCommand(a),
		reproCreateCommand(a),
		reproUpdateCommand(a),
		reproDeleteCommand(a),
	)
	return cmd
}

func (a *app) reproductiveStore() *reproductive.Store {
	return reproductive.NewStore(reproductive.NewClient(a.api), a.log)
}

func reproListCommand(a *app) *cobra.Command {
	var (
		species string
		search  string
		page    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records (client-side filter and pagination)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			sp := reproductive.Species(species)
			if sp != reproductive.SpeciesAll && !sp.Valid() {
				return errors.New("--species must be all, canine or feline")
			}

			store := a.reproductiveStore()
			if err := store.Load(a.ctx(cmd.Context()), reproductive.ListQuery{}); err != nil {
				return err
			}

			view := reproductive.NewView(a.cfg.PageSize)
			view.SetSpecies(sp)
			view.SetSearch(search)
			view.SetPage(page)
			p := view.Apply(store.Records())

			if len(p.Items) == 0 {
				fmt.Fprintln(a.out, "No records found.")
				return nil
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tOWNER\tSPECIES\tBREED\tCOLOR\tGENDER\tSTATUS\tDATE")
			for _, r := range p.Items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Name, r.OwnerName, r.Species, r.Breed, r.Color, r.Gender, r.ReproductiveStatus, r.Date)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "\nPage %d of %d (%d records)\n", p.Page, p.TotalPages, p.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&species, "species", string(reproductive.SpeciesAll), "Species: all, canine, feline")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name, owner, breed or color")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

type reproFlags struct {
	in      reproductive.Input
	species string
	status  string
}

func (f *reproFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.in.Name, "name", "", "Pet name")
	fs.StringVar(&f.in.OwnerName, "owner", "", "Owner name")
	fs.StringVar(&f.species, "species", "", "Species: canine, feline")
	fs.StringVar(&f.in.Date, "date", "", "Procedure date (YYYY-MM-DD)")
	fs.StringVar(&f.in.DateOfBirth, "dob", "", "Date of birth (YYYY-MM-DD)")
	fs.StringVar(&f.in.Color, "color", "", "Color")
	fs.StringVar(&f.in.Breed, "breed", "", "Breed")
	fs.StringVar(&f.in.Gender, "gender", "", "Gender: male, female")
	fs.StringVar(&f.status, "status", "", "Reproductive status: castrated, spayed")
}

// apply copia al formulario los flags que se pasaron.
func (f *reproFlags) apply(fs *pflag.FlagSet, s *reproductive.Input) {
	set := func(flag string, dst *string, v string) {
		if fs.Changed(flag) {
			*dst = v
		}
	}
	set("name", &s.Name, f.in.Name)
	set("owner", &s.OwnerName, f.in.OwnerName)
	set("date", &s.Date, f.in.Date)
	set("dob", &s.DateOfBirth, f.in.DateOfBirth)
	set("color", &s.Color, f.in.Color)
	set("breed", &s.Breed, f.in.Breed)
	if fs.Changed("gender") {
		s.Gender = strings.ToLower(f.in.Gender)
	}
	if fs.Changed("species") {
		s.Species = modal.SpeciesOf(f.species)
	}
	if fs.Changed("status") {
		s.ReproductiveStatus = reproductive.Status(strings.ToLower(f.status))
	}
}

func reproCreateCommand(a *app) *cobra.Command {
	var (
		flags reproFlags
		pet   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reproductive record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			ctx := a.ctx(cmd.Context())

			store := &createdID{Store: a.reproductiveStore()}
			add := modal.NewReproductiveAdd(store, a.log)
			add.Open()

			if pet != "" {
				if err := add.LoadPets(ctx, directory.NewClient(a.api)); err != nil {
					return err
				}
				add.TypePet(pet)
				if err := pickPet(add, pet); err != nil {
					return err
				}
			}

			add.Set(func(s *reproductive.Input) { flags.apply(cmd.Flags(), s) })

			if err := add.Submit(ctx); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created record %d\n", store.id)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&pet, "pet", "", "Copy details from the pet with this name")
	return cmd
}

// createdID guarda el id que devolvió el POST.
type createdID struct {
	*reproductive.Store
	id int64
}

func (c *createdID) Create(ctx context.Context, in reproductive.Input) (int64, error) {
	id, err := c.Store.Create(ctx, in)
	c.id = id
	return id, err
}

// pickPet elige el único match, o el que coincide exacto.
func pickPet(add *modal.ReproductiveAdd, term string) error {
	matches := add.Pets.Matches()
	switch len(matches) {
	case 0:
		return errors.New(add.Pets.Message())
	case 1:
		return add.SelectPet(0)
	}
	names := make([]string, 0, len(matches))
	for i, p := range matches {
		if strings.EqualFold(p.Name, strings.TrimSpace(term)) {
			return add.SelectPet(i)
		}
		names = append(names, p.Name)
	}
	return fmt.Errorf("pet %q is ambiguous: %s", term, strings.Join(names, ", "))
}

func reproUpdateCommand(a *app) *cobra.Command {
	var flags reproFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a reproductive record (the full form is sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd.Context())

			store := a.reproductiveStore()
			if err := store.Load(ctx, reproductive.ListQuery{}); err != nil {
				return err
			}
			orig, ok := store.Get(id)
			if !ok {
				return fmt.Errorf("record %d not found", id)
			}

			edit := modal.NewReproductiveEdit(store, a.log)
			edit.Open(orig)
			edit.Set(func(s *reproductive.Input) { flags.apply(cmd.Flags(), s) })
			if err := edit.Submit(ctx); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated record %d\n", id)
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func reproDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a reproductive record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete record %d without --yes", id)
			}

			confirm := modal.NewConfirm(reproductive.NewClient(a.api).Delete, a.log)
			confirm.Open(id, args[0])
			if err := confirm.Confirm(a.ctx(cmd.Context())); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted record %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")
	return cmd
}
