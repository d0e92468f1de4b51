package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateSubmissionNo 生成提交编号
// 格式:SUB + 时间戳(秒) + 6位随机数
// 示例:SUB1699248000123456
func GenerateSubmissionNo() string {
	timestamp := time.Now().Unix()
	random := rand.IntN(1000000)
	return fmt.Sprintf("SUB%d%06d", timestamp, random)
}
