package lifecycle

import "CastleRealm/modules/kit/errx"

// 业务拒绝原因。协议上命令不单独应答，这些错误只进访问日志，
// 客户端从事件缺席推断失败。
var (
	ErrPlayerNotFound   = errx.NewBiz("PLAYER_NOT_FOUND", "玩家不存在")
	ErrBuildingNotFound = errx.NewBiz("BUILDING_NOT_FOUND", "建筑不存在或不属于该玩家")
	ErrAlreadyUpgrading = errx.NewBiz("ALREADY_UPGRADING", "建筑已有在途升级")
	ErrMaxLevel         = errx.NewBiz("MAX_LEVEL", "建筑已到最高级")
	ErrNotAffordable    = errx.NewBiz("NOT_AFFORDABLE", "资源不足")
	ErrUnknownCatalog   = errx.NewBiz("UNKNOWN_CATALOG", "目录中不存在该条目")
	ErrBadCount         = errx.NewBiz("BAD_COUNT", "训练数量必须为正")
	ErrTierLocked       = errx.NewBiz("TIER_LOCKED", "城堡等级不满足兵阶要求")
	ErrQueueNotFound    = errx.NewBiz("QUEUE_NOT_FOUND", "训练队列不存在")
	ErrNotDue           = errx.NewBiz("NOT_DUE", "尚未到期")
)
