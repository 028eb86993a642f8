package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/directory"
	"animal-control-admin/internal/modal"
	"animal-control-admin/internal/uploads"
)

func animalControlCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "animal-control",
		Aliases: []string{"acr"},
		Short:   "Catch / surrendered intake records",
	}
	cmd.AddCommand(
		acrListCommand(a),
		acrCreateCommand(a),
		acrUpdateCommand(a),
		acrDeleteCommand(a),
		acrStatsCommand(a),
	)
	return cmd
}

func (a *app) animalControlStore() *animalcontrol.Store {
	return animalcontrol.NewStore(animalcontrol.NewClient(a.api), a.log)
}

func acrListCommand(a *app) *cobra.Command {
	var tab, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records of a tab",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			rt := animalcontrol.RecordType(tab)
			if !rt.Valid() {
				return fmt.Errorf("--tab must be catch or surrendered")
			}

			store := a.animalControlStore()
			if err := store.Load(a.ctx(cmd.Context())); err != nil {
				return err
			}

			all := store.Records()
			catch, surrendered, _ := animalcontrol.Partition(all)
			fmt.Fprintf(a.out, "Catch: %d  Surrendered: %d\n\n", len(catch), len(surrendered))
			printAnimalControl(a, animalcontrol.Filter(all, rt, search))
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(animalcontrol.RecordTypeCatch), "Tab: catch, surrendered")
	cmd.Flags().StringVar(&search, "search", "", "Filter by owner, contact, address, species, breed or detail")
	return cmd
}

func printAnimalControl(a *app, records []animalcontrol.Record) {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No records found.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tOWNER\tCONTACT\tSPECIES\tBREED\tGENDER\tDETAIL")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Day(), r.RecordType.Label(), r.OwnerName, r.ContactNumber,
			r.Species, r.Breed, r.Gender, r.Detail)
	}
	_ = tw.Flush()
}

// recordFlags registra los campos del formulario en fs.
func recordFlags(fs *pflag.FlagSet, in *animalcontrol.CreateInput, recordType *string, gender *string) {
	fs.StringVar(&in.OwnerName, "owner", "", "Owner name")
	fs.StringVar(&in.ContactNumber, "contact", "", "Contact number")
	fs.StringVar(&in.Address, "address", "", "Address")
	fs.StringVar(recordType, "type", "", "Record type: catch, surrendered")
	fs.StringVar(&in.Detail, "detail", "", "Detail / purpose")
	fs.StringVar(&in.Species, "species", "", "Species")
	fs.StringVar(&in.Breed, "breed", "", "Breed")
	fs.StringVar(gender, "gender", "", "Gender: male, female")
	fs.StringVar(&in.Date, "date", "", "Date (YYYY-MM-DD)")
}

func acrCreateCommand(a *app) *cobra.Command {
	var (
		in            animalcontrol.CreateInput
		recordType    string
		gender        string
		image         string
		fromDirectory bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an intake record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			ctx := a.ctx(cmd.Context())

			tab := animalcontrol.RecordType(recordType)
			if tab == "" {
				tab = animalcontrol.RecordTypeCatch
			}

			store := a.animalControlStore()
			add := modal.NewAnimalControlAdd(store, tab, nil, a.log)
			add.Open()

			if fromDirectory {
				if err := add.LoadOwners(ctx, directory.NewClient(a.api)); err != nil {
					return err
				}
				add.TypeOwner(in.OwnerName)
				if err := pickOwner(add, in.OwnerName); err != nil {
					return err
				}
			}

			add.Set(func(s *animalcontrol.CreateInput) {
				// lo que venga por flag pisa lo copiado del directorio
				if in.OwnerName != "" && !fromDirectory {
					s.OwnerName = in.OwnerName
				}
				for dst, src := range map[*string]string{
					&s.ContactNumber: in.ContactNumber,
					&s.Address:       in.Address,
					&s.Detail:        in.Detail,
					&s.Species:       in.Species,
					&s.Breed:         in.Breed,
					&s.Date:          in.Date,
				} {
					if src != "" {
						*dst = src
					}
				}
				if gender != "" {
					s.Gender = animalcontrol.Gender(strings.ToLower(gender))
				}
			})

			if image != "" {
				url, err := uploadImage(a, cmd, image)
				if err != nil {
					return err
				}
				add.Set(func(s *animalcontrol.CreateInput) { s.ImageURL = url })
			}

			if err := add.Submit(ctx); err != nil {
				return err
			}

			recs := store.Records()
			if len(recs) > 0 {
				fmt.Fprintf(a.out, "Created record %d\n", recs[0].ID)
			}
			return nil
		},
	}

	recordFlags(cmd.Flags(), &in, &recordType, &gender)
	cmd.Flags().StringVar(&image, "image", "", "Image file to upload and attach")
	cmd.Flags().BoolVar(&fromDirectory, "from-directory", false, "Look up --owner in the users directory and copy contact/address")
	return cmd
}

// pickOwner elige el único match, o el que coincide exacto.
func pickOwner(add *modal.AnimalControlAdd, term string) error {
	matches := add.Owners.Matches()
	switch len(matches) {
	case 0:
		return errors.New(add.Owners.Message())
	case 1:
		return add.SelectOwner(0)
	}
	names := make([]string, 0, len(matches))
	for i, u := range matches {
		if strings.EqualFold(u.DisplayName(), strings.TrimSpace(term)) {
			return add.SelectOwner(i)
		}
		names = append(names, u.DisplayName())
	}
	return fmt.Errorf("owner %q is ambiguous: %s", term, strings.Join(names, ", "))
}

func uploadImage(a *app, cmd *cobra.Command, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return uploads.NewClient(a.api).UploadImage(a.ctx(cmd.Context()), path, f)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func acrUpdateCommand(a *app) *cobra.Command {
	var (
		in         animalcontrol.CreateInput
		recordType string
		gender     string
		image      string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update the given fields of a record",
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

			store := a.animalControlStore()
			if err := store.Load(ctx); err != nil {
				return err
			}
			orig, ok := store.Get(id)
			if !ok {
				return fmt.Errorf("record %d not found", id)
			}

			edit := modal.NewAnimalControlEdit(store, a.log)
			edit.Open(orig)

			fs := cmd.Flags()
			edit.Set(func(s *animalcontrol.CreateInput) {
				set := func(flag string, dst *string, v string) {
					if fs.Changed(flag) {
						*dst = v
					}
				}
				set("owner", &s.OwnerName, in.OwnerName)
				set("contact", &s.ContactNumber, in.ContactNumber)
				set("address", &s.Address, in.Address)
				set("detail", &s.Detail, in.Detail)
				set("species", &s.Species, in.Species)
				set("breed", &s.Breed, in.Breed)
				set("date", &s.Date, in.Date)
				if fs.Changed("type") {
					s.RecordType = animalcontrol.RecordType(recordType)
				}
				if fs.Changed("gender") {
					s.Gender = animalcontrol.Gender(strings.ToLower(gender))
				}
			})

			if image != "" {
				url, err := uploadImage(a, cmd, image)
				if err != nil {
					return err
				}
				edit.Set(func(s *animalcontrol.CreateInput) { s.ImageURL = url })
			}

			if animalcontrol.Diff(orig, edit.State()).IsEmpty() {
				fmt.Fprintln(a.out, "Nothing to update")
				return nil
			}
			if err := edit.Submit(ctx); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated record %d\n", id)
			return nil
		},
	}

	recordFlags(cmd.Flags(), &in, &recordType, &gender)
	cmd.Flags().StringVar(&image, "image", "", "Image file to upload and attach")
	return cmd
}

func acrDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
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

			confirm := modal.NewConfirm(a.animalControlStore().Delete, a.log)
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

func acrStatsCommand(a *app) *cobra.Command {
	var (
		date  string
		local bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			var st animalcontrol.Statistics
			if local {
				// cuenta sobre el listado, sin el endpoint del dashboard
				store := a.animalControlStore()
				if err := store.Load(a.ctx(cmd.Context())); err != nil {
					return err
				}
				st = animalcontrol.Summarize(store.Records(), date)
			} else {
				var err error
				st, err = animalcontrol.NewClient(a.api).Statistics(a.ctx(cmd.Context()), date)
				if err != nil {
					return err
				}
			}

			day := st.Date
			if day == "" {
				day = "all dates"
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Date\t%s\n", day)
			fmt.Fprintf(tw, "Total\t%d\n", st.Total)
			fmt.Fprintf(tw, "Catch\t%d\n", st.Catch)
			fmt.Fprintf(tw, "Surrendered\t%d\n", st.Surrendered)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD); empty = all")
	cmd.Flags().BoolVar(&local, "local", false, "Count from the record list instead of the dashboard endpoint")
	return cmd
}
