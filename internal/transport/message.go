package transport

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wire shapes for the reasoning-service link. The envelope mirrors the
// service's message schema: a message_info header plus a seglist payload.

type UserInfo struct {
	Platform     string `json:"platform"`
	UserID       string `json:"user_id"`
	UserNickname string `json:"user_nickname,omitempty"`
	UserCardname string `json:"user_cardname,omitempty"`
}

type GroupInfo struct {
	Platform  string `json:"platform"`
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name,omitempty"`
}

type MessageInfo struct {
	Platform  string     `json:"platform"`
	MessageID string     `json:"message_id"`
	Time      float64    `json:"time"`
	UserInfo  *UserInfo  `json:"user_info,omitempty"`
	GroupInfo *GroupInfo `json:"group_info,omitempty"`
}

// Segment is one typed payload chunk. For type "text" Data is a JSON string;
// for type "seglist" it is a JSON array of segments.
type Segment struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type Envelope struct {
	MessageInfo    MessageInfo `json:"message_info"`
	MessageSegment Segment     `json:"message_segment"`
	RawMessage     string      `json:"raw_message,omitempty"`
}

func TextSegment(text string) Segment {
	data, _ := json.Marshal(text)
	return Segment{Type: "text", Data: data}
}

func SegList(segments ...Segment) Segment {
	data, _ := json.Marshal(segments)
	return Segment{Type: "seglist", Data: data}
}

// NewChatEnvelope builds the outbound envelope for one user utterance.
func NewChatEnvelope(platform, groupID, text, userID, nickname string) Envelope {
	now := float64(time.Now().UnixMilli()) / 1000

	info := MessageInfo{
		Platform:  platform,
		MessageID: uuid.NewString(),
		Time:      now,
		UserInfo: &UserInfo{
			Platform:     platform,
			UserID:       userID,
			UserNickname: nickname,
			UserCardname: nickname,
		},
	}
	if groupID != "" {
		info.GroupInfo = &GroupInfo{
			Platform:  platform,
			GroupID:   groupID,
			GroupName: fmt.Sprintf("live_room_%s", groupID),
		}
	}

	return Envelope{
		MessageInfo:    info,
		MessageSegment: SegList(TextSegment(text)),
		RawMessage:     text,
	}
}

// ExtractText flattens the envelope's segments into reply text. Voice
// segments contribute a placeholder marker; unknown segment types are
// skipped.
func (e Envelope) ExtractText() string {
	return extractText(e.MessageSegment)
}

func extractText(segment Segment) string {
	switch segment.Type {
	case "text", "tts_text":
		var text string
		if err := json.Unmarshal(segment.Data, &text); err == nil {
			return text
		}
		// Some senders wrap text data in an object.
		var wrapped struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(segment.Data, &wrapped); err == nil {
			return wrapped.Text
		}
		return ""
	case "voice":
		return "[语音消息]"
	case "seglist":
		var inner []Segment
		if err := json.Unmarshal(segment.Data, &inner); err != nil {
			return ""
		}
		out := ""
		for _, seg := range inner {
			out += extractText(seg)
		}
		return out
	}
	return ""
}
