package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenOrderNumber 生成 WD 前缀的订单号
func GenOrderNumber() string {
	return fmt.Sprintf("WD%d", node.Generate().Int64())
}
