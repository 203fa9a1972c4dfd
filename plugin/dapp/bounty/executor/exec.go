package executor

import (
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

// Exec_Init 初始化全局账本
func (b *Bounty) Exec_Init(payload *bty.BountyInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).initRegistry(payload)
}

// Exec_Accept 受理押注并创建赏金
func (b *Bounty) Exec_Accept(payload *bty.BountyAccept, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).acceptBet(payload)
}

// Exec_Reveal 揭示任务内容
func (b *Bounty) Exec_Reveal(payload *bty.BountyReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).revealMission(payload)
}

// Exec_Propose 提交乐观结算提案
func (b *Bounty) Exec_Propose(payload *bty.BountyPropose, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).proposeResolution(payload)
}

// Exec_Finalize 挑战期后终局结算
func (b *Bounty) Exec_Finalize(payload *bty.BountyFinalize, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).finalize(payload)
}

// Exec_Dispute 玩家质押发起争议
func (b *Bounty) Exec_Dispute(payload *bty.BountyDispute, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).dispute(payload)
}

// Exec_ResolveDispute 仲裁争议
func (b *Bounty) Exec_ResolveDispute(payload *bty.BountyResolveDispute, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).resolveDispute(payload)
}

// Exec_FundHouse 注资house
func (b *Bounty) Exec_FundHouse(payload *bty.BountyFundHouse, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).fundHouse(payload)
}

// Exec_WithdrawTreasury 提取金库
func (b *Bounty) Exec_WithdrawTreasury(payload *bty.BountyWithdrawTreasury, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(b, tx, int32(index)).withdrawTreasury(payload)
}
