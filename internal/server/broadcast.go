package server

import (
	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/types"
)

// GetOnlineCount 获取在线人数（按需调用）
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// JoinGroup 把连接加入房间广播组，组不存在时创建
func (s *Server) JoinGroup(roomID string, client types.ClientInterface) {
	c, ok := client.(*Client)
	if !ok {
		return
	}

	s.groupsMu.Lock()
	defer s.groupsMu.Unlock()

	group, exists := s.groups[roomID]
	if !exists {
		group = make(map[string]*Client)
		s.groups[roomID] = group
	}
	group[c.ID] = c
}

// GroupExists 广播组是否存在且非空
// joinRoom 用它判断房间是否存在（传输层视角）
func (s *Server) GroupExists(roomID string) bool {
	s.groupsMu.RLock()
	defer s.groupsMu.RUnlock()
	return len(s.groups[roomID]) > 0
}

// BroadcastToGroup 向房间内所有成员群发，发后即忘
// 空组（含不存在的房间）等于无操作
func (s *Server) BroadcastToGroup(roomID string, msg *protocol.Message) {
	s.groupsMu.RLock()
	defer s.groupsMu.RUnlock()

	for _, client := range s.groups[roomID] {
		client.SendMessage(msg)
	}
}

// Broadcast 广播消息给所有客户端
func (s *Server) Broadcast(msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}

// leaveAllGroups 连接断开时从所有广播组移除
// 只清连接，不动注册表里的会话：房间与进程同寿命
func (s *Server) leaveAllGroups(clientID string) {
	s.groupsMu.Lock()
	defer s.groupsMu.Unlock()

	for roomID, group := range s.groups {
		if _, ok := group[clientID]; ok {
			delete(group, clientID)
			if len(group) == 0 {
				delete(s.groups, roomID)
			}
		}
	}
}
