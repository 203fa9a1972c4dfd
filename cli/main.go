package main

import (
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/util/cli"
	_ "github.com/seek-protocol/seekchain/plugin"
)

func main() {
	cli.Run("", "", "")
}
