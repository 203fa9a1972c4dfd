// Package types 赏金对赌协议相关的定义
package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

var (
	// BountyX driver name
	BountyX    = "bounty"
	actionName = map[string]int32{
		NameInitAction:             TyInitAction,
		NameAcceptAction:           TyAcceptAction,
		NameRevealAction:           TyRevealAction,
		NameProposeAction:          TyProposeAction,
		NameFinalizeAction:         TyFinalizeAction,
		NameDisputeAction:          TyDisputeAction,
		NameResolveDisputeAction:   TyResolveDisputeAction,
		NameFundHouseAction:        TyFundHouseAction,
		NameWithdrawTreasuryAction: TyWithdrawTreasuryAction,
	}
	logmap = map[int64]*types.LogInfo{
		TyLogBountyInit:           {Ty: reflect.TypeOf(ReceiptRegistry{}), Name: "LogBountyInit"},
		TyLogBountyAccept:         {Ty: reflect.TypeOf(ReceiptBounty{}), Name: "LogBountyAccept"},
		TyLogBountyReveal:         {Ty: reflect.TypeOf(ReceiptBounty{}), Name: "LogBountyReveal"},
		TyLogBountyPropose:        {Ty: reflect.TypeOf(ReceiptBounty{}), Name: "LogBountyPropose"},
		TyLogBountyFinalize:       {Ty: reflect.TypeOf(ReceiptBounty{}), Name: "LogBountyFinalize"},
		TyLogBountyDispute:        {Ty: reflect.TypeOf(ReceiptBounty{}), Name: "LogBountyDispute"},
		TyLogBountyResolveDispute: {Ty: reflect.TypeOf(ReceiptBounty{}), Name: "LogBountyResolveDispute"},
		TyLogHouseFund:            {Ty: reflect.TypeOf(ReceiptRegistry{}), Name: "LogHouseFund"},
		TyLogTreasuryWithdraw:     {Ty: reflect.TypeOf(ReceiptRegistry{}), Name: "LogTreasuryWithdraw"},
		TyLogRegistryUpdate:       {Ty: reflect.TypeOf(ReceiptRegistry{}), Name: "LogRegistryUpdate"},
	}
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, []byte(BountyX))
	types.RegFork(BountyX, InitFork)
	types.RegExec(BountyX, InitExecutor)
}

// InitFork init fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(BountyX, "Enable", 0)
}

// InitExecutor init executor type
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(BountyX, NewType(cfg))
}

// BountyType defines BountyType
type BountyType struct {
	types.ExecTypeBase
}

// NewType new a BountyType object
func NewType(cfg *types.Chain33Config) *BountyType {
	c := &BountyType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName return driver name
func (b *BountyType) GetName() string {
	return BountyX
}

// GetPayload return bounty action
func (b *BountyType) GetPayload() types.Message {
	return &BountyAction{}
}

// GetTypeMap return typename of actionname
func (b *BountyType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap get receipt log map
func (b *BountyType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}
