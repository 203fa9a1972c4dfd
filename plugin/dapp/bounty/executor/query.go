package executor

import (
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

const defaultListCount = 20

// Query_GetRegistry 查询全局账本
func (b *Bounty) Query_GetRegistry(in *types.ReqNil) (types.Message, error) {
	return getRegistry(b.GetStateDB())
}

// Query_GetBountyInfo 按id查询赏金
func (b *Bounty) Query_GetBountyInfo(in *bty.ReqBountyInfo) (types.Message, error) {
	if in.GetBountyId() == "" {
		return nil, types.ErrInvalidParam
	}
	return getBounty(b.GetStateDB(), in.BountyId)
}

// Query_ListBounty 列表查询，player为空时遍历全部赏金
// primaryKey传上一页最后一条的本地键实现翻页
func (b *Bounty) Query_ListBounty(in *bty.ReqBountyList) (types.Message, error) {
	prefix := calcBountyLocalPrefix()
	if in.GetPlayer() != "" {
		prefix = calcPlayerIndexPrefix(in.Player)
	}
	count := in.GetCount()
	if count <= 0 || count > 100 {
		count = defaultListCount
	}
	var primaryKey []byte
	if in.GetPrimaryKey() != "" {
		primaryKey = []byte(in.PrimaryKey)
	}
	values, err := b.GetLocalDB().List(prefix, primaryKey, count, 0)
	if err != nil {
		return nil, err
	}
	reply := &bty.ReplyBountyList{}
	for _, value := range values {
		var bounty bty.Bounty
		if err := types.Decode(value, &bounty); err != nil {
			return nil, err
		}
		reply.Bounties = append(reply.Bounties, &bounty)
	}
	return reply, nil
}
