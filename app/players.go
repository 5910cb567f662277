package app

import (
	"dogwalk/errors"
	"dogwalk/model"
)

type PlayerID int

// Player 令牌与（会话, 狗）的绑定；创建后不可变
type Player struct {
	ID    PlayerID
	Token Token
	MapID model.MapID
	Dog   model.DogIndex
}

// Players 玩家注册表，令牌 O(1) 查找
type Players struct {
	players []*Player
	byToken map[Token]int
	ids     model.Sequence
	tokens  TokenSource
}

func NewPlayers(tokens TokenSource) *Players {
	if tokens == nil {
		tokens = NewRandomTokens()
	}
	return &Players{
		byToken: make(map[Token]int),
		tokens:  tokens,
	}
}

// AddPlayer 在会话中生成狗并发放不重复的令牌
func (p *Players) AddPlayer(name string, session *model.GameSession) (*Player, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	dog, err := session.AddDog(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn dog for %q", name)
	}

	token := p.tokens.NextToken()
	for p.contains(token) {
		token = p.tokens.NextToken()
	}

	player := &Player{
		ID:    PlayerID(p.ids.Next()),
		Token: token,
		MapID: session.Map().ID(),
		Dog:   dog,
	}
	p.byToken[token] = len(p.players)
	p.players = append(p.players, player)
	return player, nil
}

func (p *Players) contains(token Token) bool {
	_, ok := p.byToken[token]
	return ok
}

// FindByToken 未找到返回 false，不视为错误
func (p *Players) FindByToken(token Token) (*Player, bool) {
	i, ok := p.byToken[token]
	if !ok {
		return nil, false
	}
	return p.players[i], true
}

func (p *Players) Len() int {
	return len(p.players)
}
