package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 访问日志业务码：0 成功、4xx 业务拒绝、5xx 系统错误。
const (
	OK           = 0
	InvalidParam = 400
	Ignored      = 404
	SystemError  = 500
)
