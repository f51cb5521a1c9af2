package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"

	"github.com/palemoky/pixel-paint/internal/protocol"
	"github.com/palemoky/pixel-paint/internal/protocol/codec"
)

// 调试用命令行客户端：连上服务器后手动发协议消息、打印收到的事件
// 真正的游戏客户端是网页端，这个工具只做联调

var (
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

func main() {
	addr := flag.String("addr", "ws://localhost:1780/ws", "服务器地址")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		log.Fatalf("连接失败: %v", err)
	}
	defer conn.Close()

	go readLoop(conn)

	fmt.Println(promptStyle.Render("命令: ping | create <player> <mode> | join <room> <player> | preset <room> <player> | tile <room> <player> <index> | top | online | quit"))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}

		msg, err := buildMessage(line)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}

		data, err := codec.Encode(msg)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Fatalf("发送失败: %v", err)
		}
	}
}

// readLoop 打印服务器推送的事件
func readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("连接断开: %v", err)))
			os.Exit(1)
		}

		msg, err := codec.Decode(data)
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("解码失败: %v", err)))
			continue
		}

		style := eventStyle
		if msg.Type == protocol.MsgError {
			style = errorStyle
		}
		fmt.Println(style.Render(fmt.Sprintf("<< %s %s", msg.Type, compactJSON(msg.Payload))))
		codec.PutMessage(msg)
	}
}

// buildMessage 把一行命令翻译成协议消息
func buildMessage(line string) (*protocol.Message, error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "ping":
		return codec.NewMessage(protocol.MsgPing, nil)
	case "create":
		if len(args) < 2 {
			return nil, fmt.Errorf("用法: create <player> <mode>")
		}
		mode, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("mode 必须是整数: %v", err)
		}
		return codec.NewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
			PlayerID: args[0],
			GameMode: mode,
		})
	case "join":
		if len(args) < 2 {
			return nil, fmt.Errorf("用法: join <room> <player>")
		}
		return codec.NewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
			RoomID:   args[0],
			PlayerID: args[1],
		})
	case "preset":
		if len(args) < 2 {
			return nil, fmt.Errorf("用法: preset <room> <player>")
		}
		// 联调用 8x8 空白地图，服务端会生成随机图案
		return codec.NewMessage(protocol.MsgGeneratePreset, protocol.GeneratePresetPayload{
			RoomID:   args[0],
			PlayerID: args[1],
			MapData:  &protocol.MapData{Rows: 8, Columns: 8},
		})
	case "tile":
		if len(args) < 3 {
			return nil, fmt.Errorf("用法: tile <room> <player> <index>")
		}
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("index 必须是整数: %v", err)
		}
		return codec.NewMessage(protocol.MsgSelectTile, protocol.SelectTilePayload{
			RoomID:   args[0],
			PlayerID: args[1],
			Tile:     protocol.Tile{Index: index, Highlighted: true},
		})
	case "top":
		return codec.NewMessage(protocol.MsgGetTopRooms, protocol.GetTopRoomsPayload{})
	case "online":
		return codec.NewMessage(protocol.MsgGetOnlineCount, nil)
	default:
		return nil, fmt.Errorf("未知命令: %s", cmd)
	}
}

// compactJSON 压缩一行输出，方便肉眼看
func compactJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	if len(raw) > 200 {
		return string(raw[:200]) + "…"
	}
	return string(raw)
}
