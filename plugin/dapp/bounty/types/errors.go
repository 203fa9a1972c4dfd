package types

import "errors"

var (
	// ErrInvalidBetAmount 押注额不在三档之内
	ErrInvalidBetAmount = errors.New("ErrInvalidBetAmount")
	// ErrInvalidCommitment 任务承诺哈希长度非法
	ErrInvalidCommitment = errors.New("ErrInvalidCommitment")
	// ErrBountyStatus 当前状态不允许该操作
	ErrBountyStatus = errors.New("ErrBountyStatus")
	// ErrChallengeNotElapsed 挑战期未结束
	ErrChallengeNotElapsed = errors.New("ErrChallengeNotElapsed")
	// ErrChallengeElapsed 挑战期已结束
	ErrChallengeElapsed = errors.New("ErrChallengeElapsed")
	// ErrAlreadyDisputed 该赏金已发起过争议
	ErrAlreadyDisputed = errors.New("ErrAlreadyDisputed")
	// ErrCommitmentMismatch 揭示的任务与承诺哈希不符
	ErrCommitmentMismatch = errors.New("ErrCommitmentMismatch")
	// ErrMissionRevealed 任务已经揭示过
	ErrMissionRevealed = errors.New("ErrMissionRevealed")
	// ErrMissionNotRevealed 任务尚未揭示
	ErrMissionNotRevealed = errors.New("ErrMissionNotRevealed")
	// ErrInsufficientHouseFunds house余额不足以支付
	ErrInsufficientHouseFunds = errors.New("ErrInsufficientHouseFunds")
	// ErrAmountOverflow 金额运算溢出
	ErrAmountOverflow = errors.New("ErrAmountOverflow")
	// ErrBountyNotAuthorized 调用者不具备所需角色
	ErrBountyNotAuthorized = errors.New("ErrBountyNotAuthorized")
	// ErrRegistryNotInit 全局账本尚未初始化
	ErrRegistryNotInit = errors.New("ErrRegistryNotInit")
	// ErrRegistryExist 全局账本已经初始化
	ErrRegistryExist = errors.New("ErrRegistryExist")
	// ErrBountyNotFound 赏金记录不存在
	ErrBountyNotFound = errors.New("ErrBountyNotFound")
)
