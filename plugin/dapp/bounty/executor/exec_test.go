package executor

import (
	"testing"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/queue"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	"github.com/pkg/errors"
	bty "github.com/seek-protocol/seekchain/plugin/dapp/bounty/types"
	"github.com/stretchr/testify/require"
)

var (
	testCfg                  = types.NewChain33Config(types.GetDefaultCfgstring())
	managerAddr, managerPriv = util.Genaddress()
	testBlockTime            = int64(1700000000)
)

func init() {
	testCfg.S("config.exec.sub.bounty.superManager", []interface{}{managerAddr})
	Init(driverName, testCfg, nil)
}

type fixedRoller struct {
	draw int64
}

func (r fixedRoller) Roll(height, blocktime, odds int64) int64 { return r.draw }

func initTestBounty(t *testing.T) (string, *Bounty) {
	q := queue.New("testbounty")
	q.SetConfig(testCfg)
	api, err := client.New(q.Client(), nil)
	require.Nil(t, err)
	dbDir, stateDB, kvdb := util.CreateTestDB()
	b := newBounty().(*Bounty)
	b.SetAPI(api)
	b.SetStateDB(stateDB)
	b.SetLocalDB(kvdb)
	b.SetEnv(10, testBlockTime, 10)
	return dbDir, b
}

func testCoinsAccount(b *Bounty) *account.DB {
	acc := account.NewCoinsAccount(testCfg)
	acc.SetDB(b.GetStateDB())
	return acc
}

func fundExecBalance(t *testing.T, b *Bounty, addr string, balance int64) {
	acc := testCoinsAccount(b)
	acc.SaveExecAccount(address.ExecAddress(driverName),
		&types.Account{Addr: addr, Balance: balance})
}

func execBalance(t *testing.T, b *Bounty, addr string) int64 {
	return testCoinsAccount(b).LoadExecAccount(addr, address.ExecAddress(driverName)).Balance
}

func execBountyTx(t *testing.T, b *Bounty, priv crypto.PrivKey, actionName string, payload types.Message) (*types.Receipt, error) {
	ety := types.LoadExecutorType(driverName)
	tx, err := ety.CreateTransaction(actionName, payload)
	require.Nil(t, err)
	tx, err = types.FormatTx(testCfg, driverName, tx)
	require.Nil(t, err)
	tx.Sign(int32(types.SECP256K1), priv)
	receipt, err := b.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	util.SaveKVList(b.GetStateDB().(db.DB), receipt.KV)
	return receipt, nil
}

func testRegistry(t *testing.T, b *Bounty) *bty.Registry {
	reg, err := getRegistry(b.GetStateDB())
	require.Nil(t, err)
	return reg
}

func testBounty(t *testing.T, b *Bounty, bountyID string) *bty.Bounty {
	bounty, err := getBounty(b.GetStateDB(), bountyID)
	require.Nil(t, err)
	return bounty
}

func testCommitment(missionID string, salt []byte) []byte {
	return missionCommitment(missionID, salt)
}

// setupRegistry 初始化账本并给house注资
func setupRegistry(t *testing.T, b *Bounty, houseFund int64) {
	fundExecBalance(t, b, managerAddr, houseFund)
	_, err := execBountyTx(t, b, managerPriv, bty.NameInitAction, &bty.BountyInit{})
	require.Nil(t, err)
	if houseFund > 0 {
		_, err = execBountyTx(t, b, managerPriv, bty.NameFundHouseAction, &bty.BountyFundHouse{Amount: houseFund})
		require.Nil(t, err)
	}
}

// acceptTestBet 走完押注流程并返回bountyId
func acceptTestBet(t *testing.T, b *Bounty, priv crypto.PrivKey, bet int64, commitment []byte) string {
	receipt, err := execBountyTx(t, b, priv, bty.NameAcceptAction,
		&bty.BountyAccept{BetAmount: bet, MissionCommitment: commitment})
	require.Nil(t, err)
	var rec bty.ReceiptBounty
	require.Nil(t, types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &rec))
	return rec.Current.BountyId
}

func TestBounty_CheckTx(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	_, priv := util.Genaddress()
	ety := types.LoadExecutorType(driverName)

	tx, err := ety.CreateTransaction(bty.NameAcceptAction,
		&bty.BountyAccept{BetAmount: 150 * bty.TokenPrecision, MissionCommitment: make([]byte, 32)})
	require.Nil(t, err)
	tx, err = types.FormatTx(testCfg, driverName, tx)
	require.Nil(t, err)
	tx.Sign(int32(types.SECP256K1), priv)
	require.Equal(t, bty.ErrInvalidBetAmount, b.CheckTx(tx, 0))

	tx, err = ety.CreateTransaction(bty.NameAcceptAction,
		&bty.BountyAccept{BetAmount: bty.Tier1BetAmount, MissionCommitment: []byte("short")})
	require.Nil(t, err)
	tx, _ = types.FormatTx(testCfg, driverName, tx)
	require.Equal(t, bty.ErrInvalidCommitment, b.CheckTx(tx, 0))

	tx, err = ety.CreateTransaction(bty.NameFundHouseAction, &bty.BountyFundHouse{Amount: 0})
	require.Nil(t, err)
	tx, _ = types.FormatTx(testCfg, driverName, tx)
	require.Equal(t, types.ErrAmount, b.CheckTx(tx, 0))

	tx, err = ety.CreateTransaction(bty.NameAcceptAction,
		&bty.BountyAccept{BetAmount: bty.Tier2BetAmount, MissionCommitment: make([]byte, 32)})
	require.Nil(t, err)
	tx, _ = types.FormatTx(testCfg, driverName, tx)
	require.Nil(t, b.CheckTx(tx, 0))
}

func TestBounty_InitRegistry(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	_, stranger := util.Genaddress()

	_, err := execBountyTx(t, b, stranger, bty.NameInitAction, &bty.BountyInit{})
	require.Equal(t, bty.ErrBountyNotAuthorized, errors.Cause(err))

	_, err = execBountyTx(t, b, managerPriv, bty.NameInitAction, &bty.BountyInit{})
	require.Nil(t, err)
	reg := testRegistry(t, b)
	require.Equal(t, managerAddr, reg.Authority)
	require.Zero(t, reg.HouseBalance)

	_, err = execBountyTx(t, b, managerPriv, bty.NameInitAction, &bty.BountyInit{})
	require.Equal(t, bty.ErrRegistryExist, err)
}

func TestBounty_AcceptBet(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 0)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)

	_, err := execBountyTx(t, b, player, bty.NameAcceptAction,
		&bty.BountyAccept{BetAmount: 150 * bty.TokenPrecision, MissionCommitment: make([]byte, 32)})
	require.Equal(t, bty.ErrInvalidBetAmount, errors.Cause(err))

	bountyID := acceptTestBet(t, b, player, bty.Tier2BetAmount, testCommitment("m-1", []byte("salt")))
	bounty := testBounty(t, b, bountyID)
	require.Equal(t, playerAddr, bounty.Player)
	require.Equal(t, int32(2), bounty.Tier)
	require.Equal(t, 2*bty.Tier2BetAmount, bounty.PayoutAmount)
	require.Equal(t, bty.BountyStatusPending, bounty.Status)
	require.Equal(t, testBlockTime+bty.DefaultTier2Duration, bounty.ExpiresAt)

	reg := testRegistry(t, b)
	require.Equal(t, bty.Tier2BetAmount, reg.HouseBalance)
	require.Equal(t, int64(1), reg.BountiesCreated)
	require.Equal(t, bty.Tier2BetAmount, execBalance(t, b, houseAddr))
	require.Equal(t, 800*bty.TokenPrecision, execBalance(t, b, playerAddr))
}

func TestBounty_RevealMission(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 0)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("nonce-7")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m-42", salt))

	_, err := execBountyTx(t, b, player, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m-42", Salt: salt})
	require.Equal(t, bty.ErrBountyNotAuthorized, errors.Cause(err))

	_, err = execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m-42", Salt: []byte("wrong")})
	require.Equal(t, bty.ErrCommitmentMismatch, err)

	_, err = execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m-42", Salt: salt})
	require.Nil(t, err)
	bounty := testBounty(t, b, bountyID)
	require.Equal(t, bty.BountyStatusSubmitted, bounty.Status)
	require.Equal(t, "m-42", bounty.MissionId)
	require.True(t, bounty.MissionRevealed)

	_, err = execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m-42", Salt: salt})
	require.Equal(t, bty.ErrMissionRevealed, err)
}

func TestBounty_FinalizeWin(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	b.SetRoller(fixedRoller{draw: 1})
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))

	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: true})
	require.Nil(t, err)
	require.Equal(t, bty.BountyStatusChallengeWon, testBounty(t, b, bountyID).Status)

	_, err = execBountyTx(t, b, player, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
	require.Equal(t, bty.ErrChallengeNotElapsed, err)

	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, player, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
	require.Nil(t, err)

	bounty := testBounty(t, b, bountyID)
	require.Equal(t, bty.BountyStatusWon, bounty.Status)
	require.False(t, bounty.SingularityWon)
	reg := testRegistry(t, b)
	require.Equal(t, 400*bty.TokenPrecision, reg.HouseBalance)
	require.Equal(t, int64(1), reg.BountiesWon)
	require.Equal(t, 1100*bty.TokenPrecision, execBalance(t, b, playerAddr))

	_, err = execBountyTx(t, b, player, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
	require.Equal(t, bty.ErrBountyStatus, errors.Cause(err))
}

func TestBounty_FinalizeLossSplit(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))

	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: false})
	require.Nil(t, err)

	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, player, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
	require.Nil(t, err)

	bounty := testBounty(t, b, bountyID)
	require.Equal(t, bty.BountyStatusLost, bounty.Status)
	reg := testRegistry(t, b)
	require.Equal(t, 570*bty.TokenPrecision, reg.HouseBalance)
	require.Equal(t, 15*bty.TokenPrecision, reg.JackpotBalance)
	require.Equal(t, 10*bty.TokenPrecision, reg.TotalBurned)
	require.Equal(t, int64(1), reg.BountiesLost)
	require.Equal(t, 15*bty.TokenPrecision, execBalance(t, b, singularityAddr))
	require.Equal(t, 10*bty.TokenPrecision, execBalance(t, b, burnAddr))
	require.Equal(t, 5*bty.TokenPrecision, execBalance(t, b, treasuryAddr))
	require.Equal(t, 570*bty.TokenPrecision, execBalance(t, b, houseAddr))
	require.Equal(t, 900*bty.TokenPrecision, execBalance(t, b, playerAddr))
}

func TestBounty_LossSplitTruncation(t *testing.T) {
	// 万分比分账向下截断，余数留在house份额内，总额不超过押注额
	amounts := []int64{
		1,
		999,
		bty.TokenPrecision + 1,
		bty.Tier1BetAmount + 7,
		bty.Tier3BetAmount - 1,
		12345678901,
	}
	for _, amount := range amounts {
		houseShare, err := bpsShare(amount, bty.HouseShareBps)
		require.Nil(t, err)
		jackpotShare, err := bpsShare(amount, bty.SingularityShareBps)
		require.Nil(t, err)
		burnShare, err := bpsShare(amount, bty.BurnShareBps)
		require.Nil(t, err)
		protocolShare, err := bpsShare(amount, bty.ProtocolShareBps)
		require.Nil(t, err)

		total := houseShare + jackpotShare + burnShare + protocolShare
		require.LessOrEqual(t, total, amount, "amount=%d", amount)
		// house托管实际留存 = 押注额 - 三笔外流份额，截断余数全部归house
		retained := amount - jackpotShare - burnShare - protocolShare
		require.GreaterOrEqual(t, retained, houseShare, "amount=%d", amount)
		require.Equal(t, amount-total, retained-houseShare, "amount=%d", amount)
	}
}

func TestBounty_FinalizeLossDepletedHouse(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	b.SetRoller(fixedRoller{draw: 1})
	setupRegistry(t, b, 0)
	loserAddr, loser := util.Genaddress()
	winnerAddr, winner := util.Genaddress()
	fundExecBalance(t, b, loserAddr, 1000*bty.TokenPrecision)
	fundExecBalance(t, b, winnerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")

	lossID := acceptTestBet(t, b, loser, bty.Tier1BetAmount, testCommitment("m-loss", salt))
	winID := acceptTestBet(t, b, winner, bty.Tier1BetAmount, testCommitment("m-win", salt))
	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: lossID, MissionId: "m-loss", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: lossID, Success: false})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: winID, MissionId: "m-win", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: winID, Success: true})
	require.Nil(t, err)

	// 胜局兑付耗尽账本余额
	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, winner, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: winID})
	require.Nil(t, err)
	require.Zero(t, testRegistry(t, b).HouseBalance)

	// 账本余额不足以覆盖分账外流时拒绝结算
	_, err = execBountyTx(t, b, loser, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: lossID})
	require.Equal(t, bty.ErrInsufficientHouseFunds, errors.Cause(err))
	require.Equal(t, bty.BountyStatusChallengeLost, testBounty(t, b, lossID).Status)
}

func TestBounty_SingularityHit(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	b.SetRoller(fixedRoller{draw: 0})
	setupRegistry(t, b, 500*bty.TokenPrecision)
	loserAddr, loser := util.Genaddress()
	winnerAddr, winner := util.Genaddress()
	fundExecBalance(t, b, loserAddr, 1000*bty.TokenPrecision)
	fundExecBalance(t, b, winnerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")

	// 负局先给奇点奖池注入15
	lossID := acceptTestBet(t, b, loser, bty.Tier1BetAmount, testCommitment("m-loss", salt))
	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: lossID, MissionId: "m-loss", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: lossID, Success: false})
	require.Nil(t, err)
	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, loser, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: lossID})
	require.Nil(t, err)
	require.Equal(t, 15*bty.TokenPrecision, testRegistry(t, b).JackpotBalance)

	winID := acceptTestBet(t, b, winner, bty.Tier1BetAmount, testCommitment("m-win", salt))
	_, err = execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: winID, MissionId: "m-win", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: winID, Success: true})
	require.Nil(t, err)
	b.SetEnv(12, testBlockTime+2*bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, winner, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: winID})
	require.Nil(t, err)

	bounty := testBounty(t, b, winID)
	require.True(t, bounty.SingularityWon)
	reg := testRegistry(t, b)
	require.Zero(t, reg.JackpotBalance)
	require.Equal(t, int64(1), reg.SingularityWins)
	require.Equal(t, 1115*bty.TokenPrecision, execBalance(t, b, winnerAddr))
	require.Zero(t, execBalance(t, b, singularityAddr))
}

func TestBounty_Dispute(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))

	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)

	_, err = execBountyTx(t, b, player, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
	require.Equal(t, bty.ErrBountyStatus, errors.Cause(err))

	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: false})
	require.Nil(t, err)

	_, err = execBountyTx(t, b, player, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
	require.Nil(t, err)
	bounty := testBounty(t, b, bountyID)
	require.Equal(t, bty.BountyStatusDisputed, bounty.Status)
	require.True(t, bounty.IsDisputed)
	require.Equal(t, bty.Tier1BetAmount/2, bounty.DisputeStake)
	require.Equal(t, 850*bty.TokenPrecision, execBalance(t, b, playerAddr))
	// 质押进托管账户但不计入账本余额
	require.Equal(t, 600*bty.TokenPrecision, testRegistry(t, b).HouseBalance)
	require.Equal(t, 650*bty.TokenPrecision, execBalance(t, b, houseAddr))

	// 重复仲裁申请返回已仲裁错误而非状态错误
	_, err = execBountyTx(t, b, player, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
	require.Equal(t, bty.ErrAlreadyDisputed, errors.Cause(err))

	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, player, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
	require.Equal(t, bty.ErrBountyStatus, errors.Cause(err))
}

func TestBounty_DisputeAfterWindow(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))

	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: false})
	require.Nil(t, err)

	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, player, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
	require.Equal(t, bty.ErrChallengeElapsed, err)
}

func TestBounty_ResolveDispute(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))
	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: false})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, player, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
	require.Nil(t, err)

	_, err = execBountyTx(t, b, player, bty.NameResolveDisputeAction,
		&bty.BountyResolveDispute{BountyId: bountyID, PlayerWins: true})
	require.Equal(t, bty.ErrBountyNotAuthorized, errors.Cause(err))

	// 胜诉退还 bet+stake 并额外补偿一倍 bet
	_, err = execBountyTx(t, b, managerPriv, bty.NameResolveDisputeAction,
		&bty.BountyResolveDispute{BountyId: bountyID, PlayerWins: true})
	require.Nil(t, err)
	require.Equal(t, bty.BountyStatusWon, testBounty(t, b, bountyID).Status)
	require.Equal(t, 1100*bty.TokenPrecision, execBalance(t, b, playerAddr))
	require.Equal(t, 350*bty.TokenPrecision, testRegistry(t, b).HouseBalance)
	require.Equal(t, 400*bty.TokenPrecision, execBalance(t, b, houseAddr))

	_, err = execBountyTx(t, b, managerPriv, bty.NameResolveDisputeAction,
		&bty.BountyResolveDispute{BountyId: bountyID, PlayerWins: true})
	require.Equal(t, bty.ErrBountyStatus, errors.Cause(err))
}

func TestBounty_ResolveDisputeForfeit(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))
	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: false})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, player, bty.NameDisputeAction, &bty.BountyDispute{BountyId: bountyID})
	require.Nil(t, err)

	_, err = execBountyTx(t, b, managerPriv, bty.NameResolveDisputeAction,
		&bty.BountyResolveDispute{BountyId: bountyID, PlayerWins: false})
	require.Nil(t, err)
	require.Equal(t, bty.BountyStatusLost, testBounty(t, b, bountyID).Status)
	// 没收质押计入账本余额，托管余额不变
	require.Equal(t, 650*bty.TokenPrecision, testRegistry(t, b).HouseBalance)
	require.Equal(t, 650*bty.TokenPrecision, execBalance(t, b, houseAddr))
	require.Equal(t, 850*bty.TokenPrecision, execBalance(t, b, playerAddr))
}

func TestBounty_WithdrawTreasury(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 500*bty.TokenPrecision)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)
	salt := []byte("s")
	bountyID := acceptTestBet(t, b, player, bty.Tier1BetAmount, testCommitment("m", salt))
	_, err := execBountyTx(t, b, managerPriv, bty.NameRevealAction,
		&bty.BountyReveal{BountyId: bountyID, MissionId: "m", Salt: salt})
	require.Nil(t, err)
	_, err = execBountyTx(t, b, managerPriv, bty.NameProposeAction,
		&bty.BountyPropose{BountyId: bountyID, Success: false})
	require.Nil(t, err)
	b.SetEnv(11, testBlockTime+bty.DefaultChallengeWindow, 10)
	_, err = execBountyTx(t, b, player, bty.NameFinalizeAction, &bty.BountyFinalize{BountyId: bountyID})
	require.Nil(t, err)

	_, err = execBountyTx(t, b, player, bty.NameWithdrawTreasuryAction,
		&bty.BountyWithdrawTreasury{Amount: bty.TokenPrecision})
	require.Equal(t, bty.ErrBountyNotAuthorized, errors.Cause(err))

	managerBefore := execBalance(t, b, managerAddr)
	receipt, err := execBountyTx(t, b, managerPriv, bty.NameWithdrawTreasuryAction,
		&bty.BountyWithdrawTreasury{Amount: 5 * bty.TokenPrecision})
	require.Nil(t, err)
	require.Zero(t, execBalance(t, b, treasuryAddr))
	require.Equal(t, managerBefore+5*bty.TokenPrecision, execBalance(t, b, managerAddr))

	log := receipt.Logs[len(receipt.Logs)-1]
	require.Equal(t, int32(bty.TyLogTreasuryWithdraw), log.Ty)
	var rec bty.ReceiptRegistry
	require.Nil(t, types.Decode(log.Log, &rec))
	require.NotNil(t, rec.Prev)
	require.NotNil(t, rec.Current)
	require.Equal(t, rec.Prev.HouseBalance, rec.Current.HouseBalance)
	require.Equal(t, managerAddr, rec.Current.Authority)
}

func TestBounty_ExecLocalAndQuery(t *testing.T) {
	dbDir, b := initTestBounty(t)
	defer util.CloseTestDB(dbDir, b.GetStateDB().(db.DB))
	setupRegistry(t, b, 0)
	playerAddr, player := util.Genaddress()
	fundExecBalance(t, b, playerAddr, 1000*bty.TokenPrecision)

	receipt, err := execBountyTx(t, b, player, bty.NameAcceptAction,
		&bty.BountyAccept{BetAmount: bty.Tier1BetAmount, MissionCommitment: make([]byte, 32)})
	require.Nil(t, err)
	dbSet, err := b.execLocal(&types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
	require.Nil(t, err)
	require.Len(t, dbSet.KV, 2)
	for _, kv := range dbSet.KV {
		require.Nil(t, b.GetLocalDB().Set(kv.Key, kv.Value))
	}

	msg, err := b.Query_ListBounty(&bty.ReqBountyList{Player: playerAddr})
	require.Nil(t, err)
	reply := msg.(*bty.ReplyBountyList)
	require.Len(t, reply.Bounties, 1)
	require.Equal(t, playerAddr, reply.Bounties[0].Player)

	msg, err = b.Query_GetBountyInfo(&bty.ReqBountyInfo{BountyId: reply.Bounties[0].BountyId})
	require.Nil(t, err)
	require.Equal(t, bty.BountyStatusPending, msg.(*bty.Bounty).Status)

	msg, err = b.Query_GetRegistry(&types.ReqNil{})
	require.Nil(t, err)
	require.Equal(t, int64(1), msg.(*bty.Registry).BountiesCreated)

	// 回滚时prev为空，索引键应当删除
	delSet, err := b.execDelLocal(&types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
	require.Nil(t, err)
	require.Len(t, delSet.KV, 2)
	for _, kv := range delSet.KV {
		require.Nil(t, kv.Value)
	}
}
