//go:build !production

package testutil

import (
	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/types"
)

// GroupMessage 一次组广播的记录
type GroupMessage struct {
	RoomID string
	Msg    *protocol.Message
}

// FakeGateway 实现 types.ServerInterface 的内存网关
// 广播会记录下来并真正投递给组内成员，方便断言"谁收到了什么"
type FakeGateway struct {
	Groups      map[string]map[string]types.ClientInterface
	Broadcasts  []GroupMessage
	Maintenance bool
	Online      int
}

// NewFakeGateway 创建内存网关
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		Groups: make(map[string]map[string]types.ClientInterface),
	}
}

func (g *FakeGateway) IsMaintenanceMode() bool { return g.Maintenance }

func (g *FakeGateway) GetOnlineCount() int { return g.Online }

func (g *FakeGateway) JoinGroup(roomID string, client types.ClientInterface) {
	group, ok := g.Groups[roomID]
	if !ok {
		group = make(map[string]types.ClientInterface)
		g.Groups[roomID] = group
	}
	group[client.GetID()] = client
}

func (g *FakeGateway) GroupExists(roomID string) bool {
	return len(g.Groups[roomID]) > 0
}

func (g *FakeGateway) BroadcastToGroup(roomID string, msg *protocol.Message) {
	g.Broadcasts = append(g.Broadcasts, GroupMessage{RoomID: roomID, Msg: msg})
	for _, client := range g.Groups[roomID] {
		client.SendMessage(msg)
	}
}

// BroadcastsTo 取发往某个房间的广播记录
func (g *FakeGateway) BroadcastsTo(roomID string) []GroupMessage {
	var out []GroupMessage
	for _, b := range g.Broadcasts {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out
}
