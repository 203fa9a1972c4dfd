package executor

import (
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

// CheckTx 无状态检查，有状态部分在Exec阶段校验
func (b *Bounty) CheckTx(tx *types.Transaction, index int) error {
	var action bty.BountyAction
	if err := types.Decode(tx.GetPayload(), &action); err != nil {
		return types.ErrActionNotSupport
	}
	switch action.Ty {
	case bty.TyInitAction:
		return nil
	case bty.TyAcceptAction:
		accept := action.GetAccept()
		if accept == nil {
			return types.ErrActionNotSupport
		}
		if betTier(accept.BetAmount) == 0 {
			return bty.ErrInvalidBetAmount
		}
		if len(accept.MissionCommitment) != bty.CommitmentSize {
			return bty.ErrInvalidCommitment
		}
		return nil
	case bty.TyRevealAction:
		reveal := action.GetReveal()
		if reveal == nil || reveal.BountyId == "" || reveal.MissionId == "" {
			return types.ErrInvalidParam
		}
		return nil
	case bty.TyProposeAction:
		if action.GetPropose().GetBountyId() == "" {
			return types.ErrInvalidParam
		}
		return nil
	case bty.TyFinalizeAction:
		if action.GetFinalize().GetBountyId() == "" {
			return types.ErrInvalidParam
		}
		return nil
	case bty.TyDisputeAction:
		if action.GetDispute().GetBountyId() == "" {
			return types.ErrInvalidParam
		}
		return nil
	case bty.TyResolveDisputeAction:
		if action.GetResolveDispute().GetBountyId() == "" {
			return types.ErrInvalidParam
		}
		return nil
	case bty.TyFundHouseAction:
		if action.GetFundHouse().GetAmount() <= 0 {
			return types.ErrAmount
		}
		return nil
	case bty.TyWithdrawTreasuryAction:
		if action.GetWithdrawTreasury().GetAmount() <= 0 {
			return types.ErrAmount
		}
		return nil
	}
	return types.ErrActionNotSupport
}
