package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"animal-control-admin/internal/domain/directory"
	"animal-control-admin/internal/typeahead"
)

func directoryCommand(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Search reference users and pets",
	}
	cmd.PersistentFlags().StringVar(&search, "search", "", "Name filter")

	cmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "Search users (owners)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			users, err := directory.NewClient(a.api).Users(a.ctx(cmd.Context()))
			if err != nil {
				return err
			}

			d := typeahead.New("owners", directory.User.DisplayName)
			d.SetCandidates(users)
			d.Type(search)
			if msg := d.Message(); msg != "" {
				fmt.Fprintln(a.out, msg)
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCONTACT\tADDRESS")
			for _, u := range d.Matches() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.DisplayName(), u.Email, u.ContactNumber, u.Address)
			}
			return tw.Flush()
		},
	}, &cobra.Command{
		Use:   "pets",
		Short: "Search pets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			pets, err := directory.NewClient(a.api).Pets(a.ctx(cmd.Context()))
			if err != nil {
				return err
			}

			d := typeahead.New("pets", func(p directory.Pet) string { return p.Name })
			d.SetCandidates(pets)
			d.Type(search)
			if msg := d.Message(); msg != "" {
				fmt.Fprintln(a.out, msg)
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tBREED\tOWNER")
			for _, p := range d.Matches() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Species, p.Breed, p.OwnerName)
			}
			return tw.Flush()
		},
	})
	return cmd
}
