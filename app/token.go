package app

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// TokenLength 令牌固定为 32 个十六进制字符
const TokenLength = 32

// Token 不透明的玩家凭证
type Token string

// TokenSource 产生候选令牌
type TokenSource interface {
	NextToken() Token
}

// RandomTokens 两个独立的 64 位随机源各取一次，拼成 32 位十六进制
type RandomTokens struct {
	g1 *rand.Rand
	g2 *rand.Rand
}

// NewRandomTokens 两个生成器各自用系统熵播种
func NewRandomTokens() *RandomTokens {
	return &RandomTokens{
		g1: rand.New(rand.NewSource(entropySeed())),
		g2: rand.New(rand.NewSource(entropySeed())),
	}
}

// NewSeededTokens 固定种子，测试用
func NewSeededTokens(seed1, seed2 int64) *RandomTokens {
	return &RandomTokens{
		g1: rand.New(rand.NewSource(seed1)),
		g2: rand.New(rand.NewSource(seed2)),
	}
}

func (t *RandomTokens) NextToken() Token {
	return Token(fmt.Sprintf("%016x%016x", t.g1.Uint64(), t.g2.Uint64()))
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// IsWellFormed 长度正确且全部为十六进制字符
func (t Token) IsWellFormed() bool {
	if len(t) != TokenLength {
		return false
	}
	for _, c := range t {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
