package executor

import (
	"bytes"
	"fmt"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
)

// 协议托管账户，均为无私钥的派生地址
// burn地址是黑洞地址，转入即视为销毁
var (
	houseAddr       = address.ExecAddress("bounty-house")
	singularityAddr = address.ExecAddress("bounty-singularity")
	treasuryAddr    = address.ExecAddress("bounty-treasury")
	burnAddr        = address.ExecAddress("bounty-burn")
)

type action struct {
	api          client.QueueProtocolAPI
	cfg          *types.Chain33Config
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	index        int32
	execaddr     string
	roller       Roller
}

func newAction(b *Bounty, tx *types.Transaction, index int32) *action {
	return &action{
		api:          b.GetAPI(),
		cfg:          b.GetAPI().GetConfig(),
		coinsAccount: b.GetCoinsAccount(),
		db:           b.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    b.GetBlockTime(),
		height:       b.GetHeight(),
		index:        index,
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		roller:       b.roller,
	}
}

func safeAdd(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, types.ErrAmount
	}
	sum := a + b
	if sum < a {
		return 0, bty.ErrAmountOverflow
	}
	return sum, nil
}

func safeMul(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, types.ErrAmount
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/a != b {
		return 0, bty.ErrAmountOverflow
	}
	return product, nil
}

// betTier 押注额必须严格等于三档之一
func betTier(amount int64) int32 {
	switch amount {
	case bty.Tier1BetAmount:
		return 1
	case bty.Tier2BetAmount:
		return 2
	case bty.Tier3BetAmount:
		return 3
	}
	return 0
}

// bpsShare 万分比分账，截断取整，余数隐式留给house份额
func bpsShare(amount, bps int64) (int64, error) {
	product, err := safeMul(amount, bps)
	if err != nil {
		return 0, err
	}
	return product / bty.TotalBps, nil
}

func missionCommitment(missionID string, salt []byte) []byte {
	data := make([]byte, 0, len(missionID)+len(salt))
	data = append(data, []byte(missionID)...)
	data = append(data, salt...)
	return common.Sha256(data)
}

func getRegistry(db dbm.KV) (*bty.Registry, error) {
	value, err := db.Get(calcRegistryKey())
	if err != nil {
		if err == types.ErrNotFound {
			return nil, bty.ErrRegistryNotInit
		}
		return nil, err
	}
	var reg bty.Registry
	if err := types.Decode(value, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func getBounty(db dbm.KV, bountyID string) (*bty.Bounty, error) {
	value, err := db.Get(calcBountyKey(bountyID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, bty.ErrBountyNotFound
		}
		return nil, err
	}
	var bounty bty.Bounty
	if err := types.Decode(value, &bounty); err != nil {
		return nil, err
	}
	return &bounty, nil
}

func registryKV(reg *bty.Registry) *types.KeyValue {
	return &types.KeyValue{Key: calcRegistryKey(), Value: types.Encode(reg)}
}

func bountyKV(bounty *bty.Bounty) *types.KeyValue {
	return &types.KeyValue{Key: calcBountyKey(bounty.BountyId), Value: types.Encode(bounty)}
}

func bountyLog(logTy int32, prev, current *bty.Bounty) *types.ReceiptLog {
	return &types.ReceiptLog{
		Ty:  logTy,
		Log: types.Encode(&bty.ReceiptBounty{Prev: prev, Current: current}),
	}
}

func registryLog(logTy int32, prev, current *bty.Registry) *types.ReceiptLog {
	return &types.ReceiptLog{
		Ty:  logTy,
		Log: types.Encode(&bty.ReceiptRegistry{Prev: prev, Current: current}),
	}
}

func mergeReceipt(receipt1, receipt2 *types.Receipt) *types.Receipt {
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}

// requireAuthority 特权操作仅允许注册的authority地址调用
func (a *action) requireAuthority(reg *bty.Registry) error {
	if a.fromaddr != reg.Authority {
		return errors.Wrapf(bty.ErrBountyNotAuthorized, "from=%s,authority=%s", a.fromaddr, reg.Authority)
	}
	return nil
}

// initRegistry 创建全局账本，引导出authority身份，全链只允许一次
func (a *action) initRegistry(init *bty.BountyInit) (*types.Receipt, error) {
	if !isSuperManager(a.cfg, a.fromaddr) {
		return nil, errors.Wrapf(bty.ErrBountyNotAuthorized, "init from=%s", a.fromaddr)
	}
	if _, err := a.db.Get(calcRegistryKey()); err == nil {
		return nil, bty.ErrRegistryExist
	}
	authority := init.GetAuthority()
	if authority == "" {
		authority = a.fromaddr
	}
	if err := address.CheckAddress(authority, a.height); err != nil {
		return nil, errors.Wrapf(err, "authority=%s", authority)
	}
	reg := &bty.Registry{Authority: authority}
	blog.Info("bounty init", "authority", authority)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{registryKV(reg)},
		Logs: []*types.ReceiptLog{registryLog(bty.TyLogBountyInit, nil, reg)},
	}, nil
}

// acceptBet 受理押注：校验档位，全额托管进house，创建赏金记录
func (a *action) acceptBet(accept *bty.BountyAccept) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	tier := betTier(accept.GetBetAmount())
	if tier == 0 {
		return nil, errors.Wrapf(bty.ErrInvalidBetAmount, "amount=%d", accept.GetBetAmount())
	}
	if len(accept.GetMissionCommitment()) != bty.CommitmentSize {
		return nil, bty.ErrInvalidCommitment
	}
	payout, err := safeMul(accept.BetAmount, 2)
	if err != nil {
		return nil, err
	}
	expiresAt, err := safeAdd(a.blocktime, subCfg.tierDuration(tier))
	if err != nil {
		return nil, err
	}

	receipt, err := a.coinsAccount.ExecTransfer(a.fromaddr, houseAddr, a.execaddr, accept.BetAmount)
	if err != nil {
		blog.Error("acceptBet transfer", "player", a.fromaddr, "amount", accept.BetAmount, "err", err)
		return nil, err
	}

	reg.HouseBalance, err = safeAdd(reg.HouseBalance, accept.BetAmount)
	if err != nil {
		return nil, err
	}
	reg.BountiesCreated++

	bounty := &bty.Bounty{
		BountyId:          fmt.Sprintf("%s:%d:%d", a.fromaddr, a.blocktime, a.index),
		Player:            a.fromaddr,
		BetAmount:         accept.BetAmount,
		PayoutAmount:      payout,
		Tier:              tier,
		Status:            bty.BountyStatusPending,
		CreatedAt:         a.blocktime,
		ExpiresAt:         expiresAt,
		MissionCommitment: accept.MissionCommitment,
	}
	blog.Debug("acceptBet", "bountyId", bounty.BountyId, "tier", tier, "expiresAt", expiresAt)

	own := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{bountyKV(bounty), registryKV(reg)},
		Logs: []*types.ReceiptLog{bountyLog(bty.TyLogBountyAccept, nil, bounty)},
	}
	return mergeReceipt(receipt, own), nil
}

// revealMission 揭示任务：哈希必须与创建时的承诺一致
func (a *action) revealMission(reveal *bty.BountyReveal) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(reg); err != nil {
		return nil, err
	}
	bounty, err := getBounty(a.db, reveal.GetBountyId())
	if err != nil {
		return nil, err
	}
	if bounty.MissionRevealed {
		return nil, bty.ErrMissionRevealed
	}
	if bounty.Status != bty.BountyStatusPending && bounty.Status != bty.BountyStatusSubmitted {
		return nil, errors.Wrapf(bty.ErrBountyStatus, "reveal status=%d", bounty.Status)
	}
	if !bytes.Equal(missionCommitment(reveal.MissionId, reveal.Salt), bounty.MissionCommitment) {
		return nil, bty.ErrCommitmentMismatch
	}

	prev := proto.Clone(bounty).(*bty.Bounty)
	bounty.MissionId = reveal.MissionId
	bounty.MissionRevealed = true
	bounty.Status = bty.BountyStatusSubmitted

	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{bountyKV(bounty)},
		Logs: []*types.ReceiptLog{bountyLog(bty.TyLogBountyReveal, prev, bounty)},
	}, nil
}

// proposeResolution 乐观结算提案，开启挑战期
func (a *action) proposeResolution(propose *bty.BountyPropose) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(reg); err != nil {
		return nil, err
	}
	bounty, err := getBounty(a.db, propose.GetBountyId())
	if err != nil {
		return nil, err
	}
	if bounty.Status != bty.BountyStatusSubmitted {
		return nil, errors.Wrapf(bty.ErrBountyStatus, "propose status=%d", bounty.Status)
	}
	if !bounty.MissionRevealed {
		return nil, bty.ErrMissionNotRevealed
	}
	challengeEndsAt, err := safeAdd(a.blocktime, subCfg.challengeWindow())
	if err != nil {
		return nil, err
	}

	prev := proto.Clone(bounty).(*bty.Bounty)
	bounty.ResolvedAt = a.blocktime
	bounty.ChallengeEndsAt = challengeEndsAt
	bounty.ProposedWin = propose.Success
	if propose.Success {
		bounty.Status = bty.BountyStatusChallengeWon
	} else {
		bounty.Status = bty.BountyStatusChallengeLost
	}
	blog.Debug("proposeResolution", "bountyId", bounty.BountyId, "success", propose.Success,
		"challengeEndsAt", challengeEndsAt)

	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{bountyKV(bounty)},
		Logs: []*types.ReceiptLog{bountyLog(bty.TyLogBountyPropose, prev, bounty)},
	}, nil
}

// dispute 玩家在挑战期内质押50%押注额，对判负结果发起争议
// 质押只进入house托管账户，不计入账本的houseBalance，没收时才入账
func (a *action) dispute(dispute *bty.BountyDispute) (*types.Receipt, error) {
	bounty, err := getBounty(a.db, dispute.GetBountyId())
	if err != nil {
		return nil, err
	}
	if a.fromaddr != bounty.Player {
		return nil, errors.Wrapf(bty.ErrBountyNotAuthorized, "dispute from=%s,player=%s", a.fromaddr, bounty.Player)
	}
	if bounty.IsDisputed {
		return nil, bty.ErrAlreadyDisputed
	}
	if bounty.Status != bty.BountyStatusChallengeLost {
		return nil, errors.Wrapf(bty.ErrBountyStatus, "dispute status=%d", bounty.Status)
	}
	if a.blocktime >= bounty.ChallengeEndsAt {
		return nil, bty.ErrChallengeElapsed
	}

	stake := bounty.BetAmount / 2
	receipt, err := a.coinsAccount.ExecTransfer(a.fromaddr, houseAddr, a.execaddr, stake)
	if err != nil {
		blog.Error("dispute stake transfer", "bountyId", bounty.BountyId, "stake", stake, "err", err)
		return nil, err
	}

	prev := proto.Clone(bounty).(*bty.Bounty)
	bounty.IsDisputed = true
	bounty.DisputeStake = stake
	bounty.DisputedAt = a.blocktime
	bounty.Status = bty.BountyStatusDisputed

	own := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{bountyKV(bounty)},
		Logs: []*types.ReceiptLog{bountyLog(bty.TyLogBountyDispute, prev, bounty)},
	}
	return mergeReceipt(receipt, own), nil
}

// finalize 挑战期结束后的终局结算，任何人都可以触发
func (a *action) finalize(finalize *bty.BountyFinalize) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	bounty, err := getBounty(a.db, finalize.GetBountyId())
	if err != nil {
		return nil, err
	}
	if bounty.Status != bty.BountyStatusChallengeWon && bounty.Status != bty.BountyStatusChallengeLost {
		return nil, errors.Wrapf(bty.ErrBountyStatus, "finalize status=%d", bounty.Status)
	}
	if a.blocktime < bounty.ChallengeEndsAt {
		return nil, bty.ErrChallengeNotElapsed
	}

	prev := proto.Clone(bounty).(*bty.Bounty)
	regPrev := proto.Clone(reg).(*bty.Registry)
	var receipt *types.Receipt
	if bounty.Status == bty.BountyStatusChallengeWon {
		receipt, err = a.settleWin(reg, bounty)
	} else {
		receipt, err = a.settleLoss(reg, bounty)
	}
	if err != nil {
		return nil, err
	}

	own := &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{bountyKV(bounty), registryKV(reg)},
		Logs: []*types.ReceiptLog{
			bountyLog(bty.TyLogBountyFinalize, prev, bounty),
			registryLog(bty.TyLogRegistryUpdate, regPrev, reg),
		},
	}
	return mergeReceipt(receipt, own), nil
}

// settleWin 胜局结算：house支付2倍押注额，随后进行奇点抽签
func (a *action) settleWin(reg *bty.Registry, bounty *bty.Bounty) (*types.Receipt, error) {
	if reg.HouseBalance < bounty.PayoutAmount {
		return nil, errors.Wrapf(bty.ErrInsufficientHouseFunds,
			"houseBalance=%d,payout=%d", reg.HouseBalance, bounty.PayoutAmount)
	}
	receipt, err := a.coinsAccount.ExecTransfer(houseAddr, bounty.Player, a.execaddr, bounty.PayoutAmount)
	if err != nil {
		blog.Error("settleWin payout", "bountyId", bounty.BountyId, "err", err)
		return nil, err
	}
	reg.HouseBalance -= bounty.PayoutAmount

	draw := a.roller.Roll(a.height, a.blocktime, subCfg.odds())
	if draw == 0 && reg.JackpotBalance > 0 {
		jackpot := reg.JackpotBalance
		jackpotReceipt, err := a.coinsAccount.ExecTransfer(singularityAddr, bounty.Player, a.execaddr, jackpot)
		if err != nil {
			blog.Error("settleWin jackpot", "bountyId", bounty.BountyId, "jackpot", jackpot, "err", err)
			return nil, err
		}
		receipt = mergeReceipt(receipt, jackpotReceipt)
		reg.JackpotBalance = 0
		reg.SingularityWins++
		bounty.SingularityWon = true
		blog.Info("singularity hit", "bountyId", bounty.BountyId, "jackpot", jackpot)
	}

	bounty.Status = bty.BountyStatusWon
	reg.BountiesWon++
	return receipt, nil
}

// settleLoss 负局结算：押注额按万分比分账
// house 70% / 奇点奖池 15% / 销毁 10% / 金库 5%，截断余数留在house
func (a *action) settleLoss(reg *bty.Registry, bounty *bty.Bounty) (*types.Receipt, error) {
	houseShare, err := bpsShare(bounty.BetAmount, bty.HouseShareBps)
	if err != nil {
		return nil, err
	}
	jackpotShare, err := bpsShare(bounty.BetAmount, bty.SingularityShareBps)
	if err != nil {
		return nil, err
	}
	burnShare, err := bpsShare(bounty.BetAmount, bty.BurnShareBps)
	if err != nil {
		return nil, err
	}
	protocolShare, err := bpsShare(bounty.BetAmount, bty.ProtocolShareBps)
	if err != nil {
		return nil, err
	}

	outflow := bounty.BetAmount - houseShare
	if reg.HouseBalance < outflow {
		return nil, errors.Wrapf(bty.ErrInsufficientHouseFunds,
			"houseBalance=%d,outflow=%d", reg.HouseBalance, outflow)
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	if jackpotShare > 0 {
		r, err := a.coinsAccount.ExecTransfer(houseAddr, singularityAddr, a.execaddr, jackpotShare)
		if err != nil {
			blog.Error("settleLoss jackpot share", "bountyId", bounty.BountyId, "err", err)
			return nil, err
		}
		receipt = mergeReceipt(receipt, r)
	}
	if burnShare > 0 {
		r, err := a.coinsAccount.ExecTransfer(houseAddr, burnAddr, a.execaddr, burnShare)
		if err != nil {
			blog.Error("settleLoss burn share", "bountyId", bounty.BountyId, "err", err)
			return nil, err
		}
		receipt = mergeReceipt(receipt, r)
	}
	if protocolShare > 0 {
		r, err := a.coinsAccount.ExecTransfer(houseAddr, treasuryAddr, a.execaddr, protocolShare)
		if err != nil {
			blog.Error("settleLoss protocol share", "bountyId", bounty.BountyId, "err", err)
			return nil, err
		}
		receipt = mergeReceipt(receipt, r)
	}

	reg.HouseBalance -= outflow
	reg.JackpotBalance, err = safeAdd(reg.JackpotBalance, jackpotShare)
	if err != nil {
		return nil, err
	}
	reg.TotalBurned, err = safeAdd(reg.TotalBurned, burnShare)
	if err != nil {
		return nil, err
	}
	bounty.Status = bty.BountyStatusLost
	reg.BountiesLost++
	return receipt, nil
}

// resolveDispute authority仲裁：胜诉退还押注和质押并额外补偿一倍押注
// 败诉则没收质押，此时质押金额才计入houseBalance
func (a *action) resolveDispute(resolve *bty.BountyResolveDispute) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(reg); err != nil {
		return nil, err
	}
	bounty, err := getBounty(a.db, resolve.GetBountyId())
	if err != nil {
		return nil, err
	}
	if bounty.Status != bty.BountyStatusDisputed {
		return nil, errors.Wrapf(bty.ErrBountyStatus, "resolveDispute status=%d", bounty.Status)
	}

	prev := proto.Clone(bounty).(*bty.Bounty)
	regPrev := proto.Clone(reg).(*bty.Registry)
	receipt := &types.Receipt{Ty: types.ExecOk}

	if resolve.PlayerWins {
		refund, err := safeAdd(bounty.BetAmount, bounty.DisputeStake)
		if err != nil {
			return nil, err
		}
		refund, err = safeAdd(refund, bounty.BetAmount)
		if err != nil {
			return nil, err
		}
		if reg.HouseBalance < refund {
			return nil, errors.Wrapf(bty.ErrInsufficientHouseFunds,
				"houseBalance=%d,refund=%d", reg.HouseBalance, refund)
		}
		r, err := a.coinsAccount.ExecTransfer(houseAddr, bounty.Player, a.execaddr, refund)
		if err != nil {
			blog.Error("resolveDispute refund", "bountyId", bounty.BountyId, "refund", refund, "err", err)
			return nil, err
		}
		receipt = mergeReceipt(receipt, r)
		reg.HouseBalance -= refund
		bounty.Status = bty.BountyStatusWon
		reg.BountiesWon++
	} else {
		reg.HouseBalance, err = safeAdd(reg.HouseBalance, bounty.DisputeStake)
		if err != nil {
			return nil, err
		}
		bounty.Status = bty.BountyStatusLost
		reg.BountiesLost++
	}
	blog.Info("resolveDispute", "bountyId", bounty.BountyId, "playerWins", resolve.PlayerWins)

	own := &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{bountyKV(bounty), registryKV(reg)},
		Logs: []*types.ReceiptLog{
			bountyLog(bty.TyLogBountyResolveDispute, prev, bounty),
			registryLog(bty.TyLogRegistryUpdate, regPrev, reg),
		},
	}
	return mergeReceipt(receipt, own), nil
}

// fundHouse 注资house托管账户
func (a *action) fundHouse(fund *bty.BountyFundHouse) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(reg); err != nil {
		return nil, err
	}
	if fund.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	receipt, err := a.coinsAccount.ExecTransfer(a.fromaddr, houseAddr, a.execaddr, fund.Amount)
	if err != nil {
		blog.Error("fundHouse transfer", "amount", fund.Amount, "err", err)
		return nil, err
	}
	regPrev := proto.Clone(reg).(*bty.Registry)
	reg.HouseBalance, err = safeAdd(reg.HouseBalance, fund.Amount)
	if err != nil {
		return nil, err
	}
	own := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{registryKV(reg)},
		Logs: []*types.ReceiptLog{registryLog(bty.TyLogHouseFund, regPrev, reg)},
	}
	return mergeReceipt(receipt, own), nil
}

// withdrawTreasury 提取金库，金库独立于houseBalance核算
func (a *action) withdrawTreasury(withdraw *bty.BountyWithdrawTreasury) (*types.Receipt, error) {
	reg, err := getRegistry(a.db)
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(reg); err != nil {
		return nil, err
	}
	if withdraw.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	regPrev := proto.Clone(reg).(*bty.Registry)
	receipt, err := a.coinsAccount.ExecTransfer(treasuryAddr, a.fromaddr, a.execaddr, withdraw.Amount)
	if err != nil {
		blog.Error("withdrawTreasury transfer", "amount", withdraw.Amount, "err", err)
		return nil, err
	}
	own := &types.Receipt{
		Ty:   types.ExecOk,
		Logs: []*types.ReceiptLog{registryLog(bty.TyLogTreasuryWithdraw, regPrev, reg)},
	}
	return mergeReceipt(receipt, own), nil
}
