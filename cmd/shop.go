package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/ui/theme"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and buy perks",
}

var shopListCmd = &cobra.Command{
	Use:   "list <student-id>",
	Short: "List perks the student can still buy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		available := b.AvailablePerks(cmd.Context(), args[0])
		if len(available) == 0 {
			fmt.Println(theme.Good.Render("All perks owned. Nice collection!"))
			return nil
		}

		fmt.Println(theme.Title.Render("Perk Shop"))
		for _, p := range available {
			fmt.Printf("%-20s %-8s %s\n", p.ID,
				theme.Coin.Render(fmt.Sprintf("%d", p.Cost)),
				theme.Subtitle.Render(p.Description))
		}
		return nil
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <student-id> <perk-id>",
	Short: "Buy a perk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := b.PurchasePerk(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if !res.Success {
			fmt.Println(theme.Bad.Render(res.Message))
			return nil
		}
		fmt.Println(theme.Good.Render(res.Message))
		fmt.Println(theme.Coin.Render(fmt.Sprintf("%d coins left", res.RemainingCoins)))
		return nil
	},
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
}
