package init

import (
	_ "github.com/seek-protocol/seekchain/plugin/dapp/bounty" //auto gen
)
