package types

// action类型id
const (
	TyInitAction = iota + 1
	TyAcceptAction
	TyRevealAction
	TyProposeAction
	TyFinalizeAction
	TyDisputeAction
	TyResolveDisputeAction
	TyFundHouseAction
	TyWithdrawTreasuryAction

	NameInitAction             = "Init"
	NameAcceptAction           = "Accept"
	NameRevealAction           = "Reveal"
	NameProposeAction          = "Propose"
	NameFinalizeAction         = "Finalize"
	NameDisputeAction          = "Dispute"
	NameResolveDisputeAction   = "ResolveDispute"
	NameFundHouseAction        = "FundHouse"
	NameWithdrawTreasuryAction = "WithdrawTreasury"
)

// log类型id
const (
	TyLogBountyInit = iota + 520
	TyLogBountyAccept
	TyLogBountyReveal
	TyLogBountyPropose
	TyLogBountyFinalize
	TyLogBountyDispute
	TyLogBountyResolveDispute
	TyLogHouseFund
	TyLogTreasuryWithdraw
	TyLogRegistryUpdate
)

// query func name
const (
	QueryGetRegistry   = "GetRegistry"
	QueryGetBountyInfo = "GetBountyInfo"
	QueryListBounty    = "ListBounty"
)

// 赏金生命周期状态，只允许前向迁移
// Cancelled为保留终态，当前没有任何操作会进入该状态
const (
	BountyStatusPending = int32(iota)
	BountyStatusSubmitted
	BountyStatusChallengeWon
	BountyStatusChallengeLost
	BountyStatusDisputed
	BountyStatusWon
	BountyStatusLost
	BountyStatusCancelled
)

// TokenPrecision SKR token精度，9位小数
const TokenPrecision = int64(1e9)

// 三档押注额
const (
	Tier1BetAmount = 100 * TokenPrecision
	Tier2BetAmount = 200 * TokenPrecision
	Tier3BetAmount = 300 * TokenPrecision
)

// 失败结算的万分比分配，截断取整，余数默认留在house份额中
const (
	TotalBps            = 10000
	HouseShareBps       = 7000
	SingularityShareBps = 1500
	BurnShareBps        = 1000
	ProtocolShareBps    = 500
)

// SingularityOdds 每次获胜有 1/500 概率触发奇点奖池
const SingularityOdds = 500

// 挑战期与各档任务时限，单位秒，可通过子配置覆盖
const (
	DefaultChallengeWindow = 3600
	DefaultTier1Duration   = 24 * 3600
	DefaultTier2Duration   = 48 * 3600
	DefaultTier3Duration   = 72 * 3600
)

// CommitmentSize 任务承诺哈希长度
const CommitmentSize = 32
