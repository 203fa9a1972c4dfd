package commands

import (
	"fmt"
	"os"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	"github.com/spf13/cobra"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

// BountyCmd bounty command
func BountyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounty",
		Short: "Bounty wagering operation",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		initCmd(),
		acceptCmd(),
		revealCmd(),
		proposeCmd(),
		finalizeCmd(),
		disputeCmd(),
		resolveDisputeCmd(),
		fundHouseCmd(),
		withdrawTreasuryCmd(),
		queryRegistryCmd(),
		queryBountyCmd(),
		listBountyCmd(),
	)
	return cmd
}

func bountyExecName(cmd *cobra.Command) string {
	paraName, _ := cmd.Flags().GetString("paraName")
	return paraName + bty.BountyX
}

func sendCreateTx(cmd *cobra.Command, actionName string, payload types.Message) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := &rpctypes.CreateTxIn{
		Execer:     bountyExecName(cmd),
		ActionName: actionName,
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

func tokenAmount(cmd *cobra.Command, flag string) int64 {
	amount, _ := cmd.Flags().GetFloat64(flag)
	return int64(amount * float64(bty.TokenPrecision))
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create registry init transaction",
		Run: func(cmd *cobra.Command, args []string) {
			authority, _ := cmd.Flags().GetString("authority")
			sendCreateTx(cmd, bty.NameInitAction, &bty.BountyInit{Authority: authority})
		},
	}
	cmd.Flags().StringP("authority", "t", "", "authority address, default to tx sender")
	return cmd
}

func acceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Create bet accept transaction",
		Run: func(cmd *cobra.Command, args []string) {
			commitHex, _ := cmd.Flags().GetString("commitment")
			commitment, err := common.FromHex(commitHex)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			sendCreateTx(cmd, bty.NameAcceptAction, &bty.BountyAccept{
				BetAmount:         tokenAmount(cmd, "amount"),
				MissionCommitment: commitment,
			})
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "bet amount in SKR, must be 100, 200 or 300")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("commitment", "c", "", "hex encoded sha256 mission commitment")
	cmd.MarkFlagRequired("commitment")
	return cmd
}

func revealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Create mission reveal transaction",
		Run: func(cmd *cobra.Command, args []string) {
			bountyID, _ := cmd.Flags().GetString("id")
			missionID, _ := cmd.Flags().GetString("mission")
			saltHex, _ := cmd.Flags().GetString("salt")
			salt, err := common.FromHex(saltHex)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			sendCreateTx(cmd, bty.NameRevealAction, &bty.BountyReveal{
				BountyId:  bountyID,
				MissionId: missionID,
				Salt:      salt,
			})
		},
	}
	cmd.Flags().StringP("id", "i", "", "bounty id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringP("mission", "m", "", "mission id")
	cmd.MarkFlagRequired("mission")
	cmd.Flags().StringP("salt", "s", "", "hex encoded commitment salt")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func proposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Create resolution proposal transaction",
		Run: func(cmd *cobra.Command, args []string) {
			bountyID, _ := cmd.Flags().GetString("id")
			success, _ := cmd.Flags().GetBool("success")
			sendCreateTx(cmd, bty.NameProposeAction, &bty.BountyPropose{
				BountyId: bountyID,
				Success:  success,
			})
		},
	}
	cmd.Flags().StringP("id", "i", "", "bounty id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolP("success", "s", false, "whether the mission succeeded")
	return cmd
}

func finalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Create finalize transaction",
		Run: func(cmd *cobra.Command, args []string) {
			bountyID, _ := cmd.Flags().GetString("id")
			sendCreateTx(cmd, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
		},
	}
	cmd.Flags().StringP("id", "i", "", "bounty id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func disputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispute",
		Short: "Create dispute transaction, stakes half of the bet",
		Run: func(cmd *cobra.Command, args []string) {
			bountyID, _ := cmd.Flags().GetString("id")
			sendCreateTx(cmd, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
		},
	}
	cmd.Flags().StringP("id", "i", "", "bounty id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func resolveDisputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Create dispute resolution transaction",
		Run: func(cmd *cobra.Command, args []string) {
			bountyID, _ := cmd.Flags().GetString("id")
			playerWins, _ := cmd.Flags().GetBool("player_wins")
			sendCreateTx(cmd, bty.NameResolveDisputeAction, &bty.BountyResolveDispute{
				BountyId:   bountyID,
				PlayerWins: playerWins,
			})
		},
	}
	cmd.Flags().StringP("id", "i", "", "bounty id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolP("player_wins", "w", false, "rule in favor of the player")
	return cmd
}

func fundHouseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Create house funding transaction",
		Run: func(cmd *cobra.Command, args []string) {
			sendCreateTx(cmd, bty.NameFundHouseAction, &bty.BountyFundHouse{
				Amount: tokenAmount(cmd, "amount"),
			})
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "funding amount in SKR")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawTreasuryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Create treasury withdraw transaction",
		Run: func(cmd *cobra.Command, args []string) {
			sendCreateTx(cmd, bty.NameWithdrawTreasuryAction, &bty.BountyWithdrawTreasury{
				Amount: tokenAmount(cmd, "amount"),
			})
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "withdraw amount in SKR")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func queryChain33(cmd *cobra.Command, funcName string, payload types.Message, result interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := rpctypes.Query4Jrpc{
		Execer:   bountyExecName(cmd),
		FuncName: funcName,
		Payload:  types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, result)
	ctx.Run()
}

func queryRegistryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Query global registry",
		Run: func(cmd *cobra.Command, args []string) {
			var res bty.Registry
			queryChain33(cmd, bty.QueryGetRegistry, &types.ReqNil{}, &res)
		},
	}
}

func queryBountyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Query bounty by id",
		Run: func(cmd *cobra.Command, args []string) {
			bountyID, _ := cmd.Flags().GetString("id")
			var res bty.Bounty
			queryChain33(cmd, bty.QueryGetBountyInfo, &bty.ReqBountyInfo{BountyId: bountyID}, &res)
		},
	}
	cmd.Flags().StringP("id", "i", "", "bounty id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func listBountyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bounties, optionally filtered by player",
		Run: func(cmd *cobra.Command, args []string) {
			player, _ := cmd.Flags().GetString("player")
			count, _ := cmd.Flags().GetInt32("count")
			primaryKey, _ := cmd.Flags().GetString("primary_key")
			var res bty.ReplyBountyList
			queryChain33(cmd, bty.QueryListBounty, &bty.ReqBountyList{
				Player:     player,
				Count:      count,
				PrimaryKey: primaryKey,
			}, &res)
		},
	}
	cmd.Flags().StringP("player", "p", "", "player address")
	cmd.Flags().Int32P("count", "c", 0, "page size")
	cmd.Flags().StringP("primary_key", "k", "", "last local key of previous page")
	return cmd
}
