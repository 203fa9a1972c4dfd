package plugin

import (
	_ "github.com/seek-protocol/seekchain/plugin/dapp/init" //auto gen
)
