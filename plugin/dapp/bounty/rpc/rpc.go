package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

// Jrpc json rpc struct
type Jrpc struct {
	cli *channelClient
}

// Grpc grpc struct
type Grpc struct {
	*channelClient
}

// Init init rpc
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	grpc := &Grpc{channelClient: cli}
	cli.Init(name, s, &Jrpc{cli: cli}, grpc)
}

// GetRegistry 查询全局账本
func (c *Jrpc) GetRegistry(param *types.ReqNil, result *interface{}) error {
	reply, err := c.cli.Query(bty.BountyX, bty.QueryGetRegistry, &types.ReqNil{})
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetBountyInfo 按id查询赏金
func (c *Jrpc) GetBountyInfo(param *bty.ReqBountyInfo, result *interface{}) error {
	if param == nil || param.BountyId == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(bty.BountyX, bty.QueryGetBountyInfo, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// ListBounty 列表查询
func (c *Jrpc) ListBounty(param *bty.ReqBountyList, result *interface{}) error {
	if param == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(bty.BountyX, bty.QueryListBounty, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}
