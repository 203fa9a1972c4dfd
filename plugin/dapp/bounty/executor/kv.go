package executor

import (
	"fmt"
)

/*
 * statedb的key以mavl-bounty-为前缀
 * localdb的key以LODB-bounty-为前缀，带字段前缀查询时使用'-'作为分割符
 */

var (
	keyPrefixStateDB = "mavl-bounty-"
	keyPrefixLocalDB = "LODB-bounty-"
)

// 全局账本固定key
func calcRegistryKey() []byte {
	return []byte(keyPrefixStateDB + "registry")
}

func calcBountyKey(bountyID string) []byte {
	return []byte(fmt.Sprintf("%srecord-%s", keyPrefixStateDB, bountyID))
}

func calcBountyLocalKey(bountyID string) []byte {
	return []byte(fmt.Sprintf("%srecord-%s", keyPrefixLocalDB, bountyID))
}

// 玩家维度索引，值为赏金快照
func calcPlayerIndexKey(player, bountyID string) []byte {
	return []byte(fmt.Sprintf("%splayer-%s-%s", keyPrefixLocalDB, player, bountyID))
}

func calcPlayerIndexPrefix(player string) []byte {
	return []byte(fmt.Sprintf("%splayer-%s-", keyPrefixLocalDB, player))
}

func calcBountyLocalPrefix() []byte {
	return []byte(keyPrefixLocalDB + "record-")
}
