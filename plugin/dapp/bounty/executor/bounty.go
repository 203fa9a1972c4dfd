// Package executor 赏金对赌协议执行器
package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

var (
	blog       = log.New("module", "execs.bounty")
	driverName = bty.BountyX
	subCfg     subConfig
)

// subConfig 子配置，用于测试链覆盖协议默认参数
type subConfig struct {
	ChallengeWindow int64   `json:"challengeWindow"`
	Tier1Duration   int64   `json:"tier1Duration"`
	Tier2Duration   int64   `json:"tier2Duration"`
	Tier3Duration   int64   `json:"tier3Duration"`
	SingularityOdds int64   `json:"singularityOdds"`
}

func (c *subConfig) challengeWindow() int64 {
	if c.ChallengeWindow > 0 {
		return c.ChallengeWindow
	}
	return bty.DefaultChallengeWindow
}

func (c *subConfig) tierDuration(tier int32) int64 {
	durations := [3]int64{c.Tier1Duration, c.Tier2Duration, c.Tier3Duration}
	defaults := [3]int64{bty.DefaultTier1Duration, bty.DefaultTier2Duration, bty.DefaultTier3Duration}
	if d := durations[tier-1]; d > 0 {
		return d
	}
	return defaults[tier-1]
}

func (c *subConfig) odds() int64 {
	if c.SingularityOdds > 0 {
		return c.SingularityOdds
	}
	return bty.SingularityOdds
}

// Init register bounty driver
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	driverName = name
	if sub != nil {
		types.MustDecode(sub, &subCfg)
	}
	drivers.Register(cfg, driverName, newBounty, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType the initialization process is relatively heavyweight, lots of reflect, so it's global
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Bounty{}))
}

// GetName return name at execution time
func GetName() string {
	return newBounty().GetName()
}

// Roller 奇点奖池抽签源，默认实现使用链上弱随机数
// 可替换为VRF等可验证随机源而不改动结算逻辑
type Roller interface {
	Roll(height, blocktime, odds int64) int64
}

type blockRoller struct{}

func (blockRoller) Roll(height, blocktime, odds int64) int64 {
	return (height + blocktime) % odds
}

// Bounty defines the bounty driver
type Bounty struct {
	drivers.DriverBase
	roller Roller
}

func newBounty() drivers.Driver {
	b := &Bounty{roller: blockRoller{}}
	b.SetChild(b)
	b.SetExecutorType(types.LoadExecutorType(driverName))
	return b
}

// GetDriverName return driver name at register
func (b *Bounty) GetDriverName() string {
	return driverName
}

// SetRoller replace the jackpot draw source
func (b *Bounty) SetRoller(r Roller) {
	b.roller = r
}

// isSuperManager 全局账本初始化的引导权限，配置于 exec.sub.bounty
func isSuperManager(cfg *types.Chain33Config, addr string) bool {
	conf := types.ConfSub(cfg, bty.BountyX)
	for _, m := range conf.GStrList("superManager") {
		if addr == m {
			return true
		}
	}
	return false
}
