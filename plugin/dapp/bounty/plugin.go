package bounty

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/seek-protocol/seekchain/plugin/dapp/bounty/commands"
	"github.com/seek-protocol/seekchain/plugin/dapp/bounty/executor"
	"github.com/seek-protocol/seekchain/plugin/dapp/bounty/rpc"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     bty.BountyX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.BountyCmd,
		RPC:      rpc.Init,
	})
}
