package executor

import (
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

// execLocal 把回执中的赏金快照写入本地索引
// 记录键和玩家维度索引键各存一份完整快照，按玩家列表查询无需二次读取
func (b *Bounty) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return dbSet, nil
	}
	for _, log := range receipt.Logs {
		switch log.Ty {
		case bty.TyLogBountyAccept, bty.TyLogBountyReveal, bty.TyLogBountyPropose,
			bty.TyLogBountyFinalize, bty.TyLogBountyDispute, bty.TyLogBountyResolveDispute:
			var rec bty.ReceiptBounty
			if err := types.Decode(log.Log, &rec); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, bountyLocalKVs(rec.Current)...)
		}
	}
	return dbSet, nil
}

func bountyLocalKVs(bounty *bty.Bounty) []*types.KeyValue {
	value := types.Encode(bounty)
	return []*types.KeyValue{
		{Key: calcBountyLocalKey(bounty.BountyId), Value: value},
		{Key: calcPlayerIndexKey(bounty.Player, bounty.BountyId), Value: value},
	}
}

// ExecLocal_Init 注册表无本地索引
func (b *Bounty) ExecLocal_Init(payload *bty.BountyInit, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_Accept 建立赏金本地索引
func (b *Bounty) ExecLocal_Accept(payload *bty.BountyAccept, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

// ExecLocal_Reveal 更新赏金本地索引
func (b *Bounty) ExecLocal_Reveal(payload *bty.BountyReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

// ExecLocal_Propose 更新赏金本地索引
func (b *Bounty) ExecLocal_Propose(payload *bty.BountyPropose, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

// ExecLocal_Finalize 更新赏金本地索引
func (b *Bounty) ExecLocal_Finalize(payload *bty.BountyFinalize, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

// ExecLocal_Dispute 更新赏金本地索引
func (b *Bounty) ExecLocal_Dispute(payload *bty.BountyDispute, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

// ExecLocal_ResolveDispute 更新赏金本地索引
func (b *Bounty) ExecLocal_ResolveDispute(payload *bty.BountyResolveDispute, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

// ExecLocal_FundHouse 注资无本地索引
func (b *Bounty) ExecLocal_FundHouse(payload *bty.BountyFundHouse, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_WithdrawTreasury 提取无本地索引
func (b *Bounty) ExecLocal_WithdrawTreasury(payload *bty.BountyWithdrawTreasury, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}
