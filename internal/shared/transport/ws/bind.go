package ws

import (
	"errors"

	"github.com/go-viper/mapstructure/v2"
)

// Bind 将入站 payload（或其中的子对象）解码到目标结构体。
// 字段名按 json tag 匹配，数字宽松转换（JSON 数字统一是 float64）。
func Bind(payload any, dst any) error {
	if payload == nil {
		return errors.New("ws payload is nil")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  dst,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(payload)
}
