package executor

import (
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

// execDelLocal 区块回滚时恢复本地索引到上一个快照
// prev为空表示该交易创建了记录，直接删除索引键
func (b *Bounty) execDelLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
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
			if rec.Prev != nil {
				dbSet.KV = append(dbSet.KV, bountyLocalKVs(rec.Prev)...)
			} else {
				dbSet.KV = append(dbSet.KV,
					&types.KeyValue{Key: calcBountyLocalKey(rec.Current.BountyId), Value: nil},
					&types.KeyValue{Key: calcPlayerIndexKey(rec.Current.Player, rec.Current.BountyId), Value: nil})
			}
		}
	}
	return dbSet, nil
}

// ExecDelLocal_Init 注册表无本地索引
func (b *Bounty) ExecDelLocal_Init(payload *bty.BountyInit, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_Accept 回滚赏金本地索引
func (b *Bounty) ExecDelLocal_Accept(payload *bty.BountyAccept, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execDelLocal(receipt)
}

// ExecDelLocal_Reveal 回滚赏金本地索引
func (b *Bounty) ExecDelLocal_Reveal(payload *bty.BountyReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execDelLocal(receipt)
}

// ExecDelLocal_Propose 回滚赏金本地索引
func (b *Bounty) ExecDelLocal_Propose(payload *bty.BountyPropose, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execDelLocal(receipt)
}

// ExecDelLocal_Finalize 回滚赏金本地索引
func (b *Bounty) ExecDelLocal_Finalize(payload *bty.BountyFinalize, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execDelLocal(receipt)
}

// ExecDelLocal_Dispute 回滚赏金本地索引
func (b *Bounty) ExecDelLocal_Dispute(payload *bty.BountyDispute, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execDelLocal(receipt)
}

// ExecDelLocal_ResolveDispute 回滚赏金本地索引
func (b *Bounty) ExecDelLocal_ResolveDispute(payload *bty.BountyResolveDispute, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execDelLocal(receipt)
}

// ExecDelLocal_FundHouse 注资无本地索引
func (b *Bounty) ExecDelLocal_FundHouse(payload *bty.BountyFundHouse, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_WithdrawTreasury 提取无本地索引
func (b *Bounty) ExecDelLocal_WithdrawTreasury(payload *bty.BountyWithdrawTreasury, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}
